//go:build (386 || amd64) && gc

package cpuid

// Supported reports whether this build can issue CPUID
const Supported = true

// implemented in cpuid_amd64.s and cpuid_386.s
func cpuid(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)

// Query executes CPUID on the current logical processor.
//
// Results may differ between cores on heterogeneous parts; callers treat all
// cores as identical.
func Query(leaf, subleaf uint32) Registers {
	a, b, c, d := cpuid(leaf, subleaf)
	return Registers{EAX: a, EBX: b, ECX: c, EDX: d}
}
