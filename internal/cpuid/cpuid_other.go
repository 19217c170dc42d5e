//go:build !(386 || amd64) || !gc

package cpuid

// Supported reports whether this build can issue CPUID.
// There is no Query on this build; the instruction does not exist here.
const Supported = false
