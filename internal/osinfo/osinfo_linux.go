//go:build linux

package osinfo

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// LinuxReader implements OS identification for Linux
type LinuxReader struct {
	version  VersionFunc
	platform func(ctx context.Context) (string, error)
}

// newPlatformReader creates a new Linux OS reader
func newPlatformReader() Reader {
	return &LinuxReader{version: unameVersion, platform: platformDetails}
}

// Identify returns the kernel version, e.g. "Linux 6.8", with the
// distribution in Details.
func (r *LinuxReader) Identify(ctx context.Context) Identity {
	id := identify(ctx, "Linux", r.version)
	if details, err := r.platform(ctx); err == nil {
		id.Details = details
	} else {
		log.WithError(err).Debug("platform information unavailable")
	}
	return id
}

func unameVersion(ctx context.Context) (uint32, uint32, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return 0, 0, err
	}
	return parseRelease(unix.ByteSliceToString(uts.Release[:]))
}

func platformDetails(ctx context.Context) (string, error) {
	platform, _, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(platform + " " + version), nil
}
