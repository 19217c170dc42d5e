package osinfo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Identity represents the operating system version
type Identity struct {
	Family  string `json:"family" yaml:"family"`
	Major   uint32 `json:"major" yaml:"major"`
	Minor   uint32 `json:"minor" yaml:"minor"`
	Label   string `json:"label" yaml:"label"`
	Known   bool   `json:"known" yaml:"known"`
	Details string `json:"details,omitempty" yaml:"details,omitempty"`
}

// Reader interface for OS identification
type Reader interface {
	Identify(ctx context.Context) Identity
}

// NewReader creates a new OS reader for the current platform
func NewReader() Reader {
	return newPlatformReader()
}

// VersionFunc returns the major and minor OS version
type VersionFunc func(ctx context.Context) (major, minor uint32, err error)

// identify runs version and renders the result, falling back to the unknown
// state on failure.
func identify(ctx context.Context, family string, version VersionFunc) Identity {
	major, minor, err := version(ctx)
	if err != nil {
		return Unknown(family)
	}
	return Known(family, major, minor)
}

// Known renders a successfully queried version, e.g. "Windows 10.0"
func Known(family string, major, minor uint32) Identity {
	return Identity{
		Family: family,
		Major:  major,
		Minor:  minor,
		Label:  fmt.Sprintf("%s %d.%d", family, major, minor),
		Known:  true,
	}
}

// Unknown is the labelled state returned when the version query fails
func Unknown(family string) Identity {
	if family == "" {
		family = "OS"
	}
	return Identity{
		Family: family,
		Label:  "Unknown " + family + " version",
	}
}

// parseRelease extracts major.minor from strings such as "6.8.0-45-generic" or "14.5"
func parseRelease(release string) (major, minor uint32, err error) {
	release = strings.TrimSpace(release)
	end := strings.IndexFunc(release, func(r rune) bool {
		return r != '.' && (r < '0' || r > '9')
	})
	if end >= 0 {
		release = release[:end]
	}

	parts := strings.Split(release, ".")
	if parts[0] == "" {
		return 0, 0, fmt.Errorf("no version number in %q", release)
	}

	maj, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("parse major version: %w", err)
	}
	if len(parts) < 2 || parts[1] == "" {
		return uint32(maj), 0, nil
	}
	mnr, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("parse minor version: %w", err)
	}
	return uint32(maj), uint32(mnr), nil
}
