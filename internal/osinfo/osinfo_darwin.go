//go:build darwin

package osinfo

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// DarwinReader implements OS identification for macOS
type DarwinReader struct {
	version  VersionFunc
	platform func(ctx context.Context) (string, error)
}

// newPlatformReader creates a new macOS OS reader
func newPlatformReader() Reader {
	return &DarwinReader{version: productVersion, platform: platformDetails}
}

// Identify returns the product version, e.g. "macOS 14.5"
func (r *DarwinReader) Identify(ctx context.Context) Identity {
	id := identify(ctx, "macOS", r.version)
	if details, err := r.platform(ctx); err == nil {
		id.Details = details
	} else {
		log.WithError(err).Debug("platform information unavailable")
	}
	return id
}

func productVersion(ctx context.Context) (uint32, uint32, error) {
	v, err := unix.Sysctl("kern.osproductversion")
	if err != nil {
		return 0, 0, err
	}
	return parseRelease(v)
}

func platformDetails(ctx context.Context) (string, error) {
	_, _, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		return "", err
	}
	kernel, err := host.KernelVersionWithContext(ctx)
	if err != nil {
		return strings.TrimSpace(version), nil
	}
	return strings.TrimSpace(version + " (Darwin " + kernel + ")"), nil
}
