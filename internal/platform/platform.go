package platform

import (
	"fmt"
	"runtime"

	"github.com/CristiGvl/corecheck/internal/cpuid"
	"github.com/CristiGvl/corecheck/internal/processor"
)

// SupportedOS represents supported operating systems
type SupportedOS string

const (
	Linux   SupportedOS = "linux"
	Windows SupportedOS = "windows"
	Darwin  SupportedOS = "darwin"
)

// Info describes which queries the current build can serve
type Info struct {
	OS           SupportedOS            `json:"os" yaml:"os"`
	Architecture processor.Architecture `json:"architecture" yaml:"architecture"`
	Supported    bool                   `json:"supported" yaml:"supported"`
	CPUID        bool                   `json:"cpuid" yaml:"cpuid"`
}

// GetOS returns the current operating system
func GetOS() SupportedOS {
	return SupportedOS(runtime.GOOS)
}

// IsSupported returns true if the current OS has a clock and OS identity source
func IsSupported() bool {
	switch GetOS() {
	case Linux, Windows, Darwin:
		return true
	}
	return false
}

// ValidateSupport returns an error if the current OS is not supported
func ValidateSupport() error {
	if !IsSupported() {
		return fmt.Errorf("unsupported operating system: %s. Supported: linux, windows, darwin", runtime.GOOS)
	}
	return nil
}

// Describe returns the capabilities of the current build
func Describe() Info {
	return Info{
		OS:           GetOS(),
		Architecture: processor.Build(),
		Supported:    IsSupported(),
		CPUID:        cpuid.Supported,
	}
}
