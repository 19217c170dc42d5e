//go:build (386 || amd64) && gc

package processor

import "github.com/CristiGvl/corecheck/internal/cpuid"

// newPlatformReader creates a CPUID-backed reader
func newPlatformReader() Reader {
	return &CPUIDReader{
		query: cpuid.Query,
		count: logicalCount,
	}
}
