package processor

import (
	"runtime"
	"strings"
)

// Architecture is the instruction set family the binary was built for
type Architecture string

const (
	ArchX8664   Architecture = "x86_64"
	ArchX86     Architecture = "x86"
	ArchARM64   Architecture = "arm64"
	ArchARM     Architecture = "arm"
	ArchPPC64   Architecture = "ppc64"
	ArchPPC     Architecture = "ppc"
	ArchMIPS    Architecture = "mips"
	ArchUnknown Architecture = "unknown"
)

// buildArchitecture is resolved from runtime.GOARCH, a compile-time constant.
var buildArchitecture = ParseArchitecture(runtime.GOARCH)

// Build returns the architecture of the running binary
func Build() Architecture {
	return buildArchitecture
}

// ParseArchitecture maps a GOARCH value or a target triple such as
// "x86_64-pc-windows-msvc" to one of the fixed architecture labels.
func ParseArchitecture(target string) Architecture {
	arch := strings.ToLower(strings.TrimSpace(target))
	if i := strings.IndexByte(arch, '-'); i >= 0 {
		arch = arch[:i]
	}

	switch arch {
	case "x86_64", "amd64", "x86_64h", "x64":
		return ArchX8664
	case "386", "x86", "i386", "i486", "i586", "i686", "i786":
		return ArchX86
	case "arm64", "aarch64", "aarch64_be", "arm64e":
		return ArchARM64
	case "powerpc64", "powerpc64le", "ppc64", "ppc64le":
		return ArchPPC64
	case "powerpc", "powerpcle", "ppc", "ppcle":
		return ArchPPC
	}

	switch {
	case strings.HasPrefix(arch, "arm"), strings.HasPrefix(arch, "thumb"):
		return ArchARM
	case strings.HasPrefix(arch, "mips"):
		return ArchMIPS
	default:
		return ArchUnknown
	}
}

// IsUnknown reports whether a is empty or ArchUnknown
func (a Architecture) IsUnknown() bool {
	return a == "" || a == ArchUnknown
}

// String returns the label, or "unknown" for the empty value
func (a Architecture) String() string {
	if a == "" {
		return string(ArchUnknown)
	}
	return string(a)
}
