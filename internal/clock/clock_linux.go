//go:build linux

package clock

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const maxFreqPath = "devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq"

// LinuxReader reads the rated clock from cpufreq in sysfs
type LinuxReader struct {
	store ValueStore
}

// newPlatformReader creates a new Linux clock reader
func newPlatformReader() Reader {
	return &LinuxReader{store: sysfsStore{root: "/sys"}}
}

// MaxMHz returns cpuinfo_max_freq of cpu0, converted from kHz
func (r *LinuxReader) MaxMHz(ctx context.Context) (uint32, error) {
	return readStoreMHz(r.store, maxFreqPath, "", 1000)
}

// sysfsStore treats root/key as a file holding one decimal integer
type sysfsStore struct {
	root string
}

func (s sysfsStore) Integer(key, name string) (uint64, error) {
	path := filepath.Join(s.root, key, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
}
