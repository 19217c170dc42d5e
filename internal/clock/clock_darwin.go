//go:build darwin

package clock

import (
	"context"

	"golang.org/x/sys/unix"
)

// DarwinReader reads the rated clock through sysctl
type DarwinReader struct {
	store ValueStore
}

// newPlatformReader creates a new macOS clock reader
func newPlatformReader() Reader {
	return &DarwinReader{store: sysctlStore{}}
}

// MaxMHz returns hw.cpufrequency_max converted from Hz.
// Apple silicon does not publish it and reports unavailable.
func (r *DarwinReader) MaxMHz(ctx context.Context) (uint32, error) {
	return readStoreMHz(r.store, "hw", "cpufrequency_max", 1000000)
}

type sysctlStore struct{}

func (sysctlStore) Integer(key, name string) (uint64, error) {
	return unix.SysctlUint64(key + "." + name)
}
