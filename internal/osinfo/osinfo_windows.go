//go:build windows

package osinfo

import (
	"context"
	"errors"
	"strings"

	"github.com/StackExchange/wmi"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

// Win32_OperatingSystem represents OS WMI class
type Win32_OperatingSystem struct {
	Caption     string
	Version     string
	BuildNumber string
}

// WindowsReader implements OS identification for Windows
type WindowsReader struct {
	version VersionFunc
	caption func(ctx context.Context) (string, error)
}

// newPlatformReader creates a new Windows OS reader
func newPlatformReader() Reader {
	return &WindowsReader{version: rtlVersion, caption: wmiCaption}
}

// Identify returns the Windows version, e.g. "Windows 10.0"
func (r *WindowsReader) Identify(ctx context.Context) Identity {
	id := identify(ctx, "Windows", r.version)
	if caption, err := r.caption(ctx); err == nil {
		id.Details = caption
	} else {
		log.WithError(err).Debug("WMI operating system caption unavailable")
	}
	return id
}

// rtlVersion uses RtlGetVersion, which reports the real version regardless
// of the application manifest.
func rtlVersion(ctx context.Context) (uint32, uint32, error) {
	v := windows.RtlGetVersion()
	if v == nil || v.MajorVersion == 0 {
		return 0, 0, errors.New("RtlGetVersion returned no version")
	}
	return v.MajorVersion, v.MinorVersion, nil
}

func wmiCaption(ctx context.Context) (string, error) {
	var systems []Win32_OperatingSystem
	if err := wmi.Query("SELECT Caption, Version, BuildNumber FROM Win32_OperatingSystem", &systems); err != nil {
		return "", err
	}
	if len(systems) == 0 {
		return "", errors.New("no Win32_OperatingSystem instance")
	}
	return strings.TrimSpace(systems[0].Caption), nil
}
