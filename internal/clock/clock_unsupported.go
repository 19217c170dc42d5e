//go:build !linux && !windows && !darwin

package clock

import (
	"context"
	"fmt"
	"runtime"

	"github.com/CristiGvl/corecheck/internal/hwerr"
)

// UnsupportedReader is a fallback for unsupported platforms
type UnsupportedReader struct{}

// newPlatformReader creates a fallback clock reader for unsupported platforms
func newPlatformReader() Reader {
	return &UnsupportedReader{}
}

// MaxMHz returns an unsupported error
func (r *UnsupportedReader) MaxMHz(ctx context.Context) (uint32, error) {
	return 0, hwerr.Unsupported("max clock", fmt.Errorf("no clock source on %s", runtime.GOOS))
}
