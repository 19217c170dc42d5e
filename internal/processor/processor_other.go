//go:build !(386 || amd64) || !gc

package processor

// newPlatformReader creates a topology-only reader for builds without CPUID
func newPlatformReader() Reader {
	return &UnsupportedReader{count: logicalCount}
}
