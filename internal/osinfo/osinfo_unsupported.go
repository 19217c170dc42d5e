//go:build !linux && !windows && !darwin

package osinfo

import (
	"context"
	"fmt"
	"runtime"
)

// UnsupportedReader is a fallback for unsupported platforms
type UnsupportedReader struct{}

// newPlatformReader creates a fallback OS reader for unsupported platforms
func newPlatformReader() Reader {
	return &UnsupportedReader{}
}

// Identify always returns the unknown state labelled by GOOS
func (r *UnsupportedReader) Identify(ctx context.Context) Identity {
	return identify(ctx, runtime.GOOS, func(context.Context) (uint32, uint32, error) {
		return 0, 0, fmt.Errorf("OS identification not supported on %s", runtime.GOOS)
	})
}
