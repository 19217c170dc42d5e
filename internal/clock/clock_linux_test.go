//go:build linux

package clock

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/CristiGvl/corecheck/internal/hwerr"
)

func writeMaxFreq(t *testing.T, root, content string) {
	t.Helper()
	path := filepath.Join(root, maxFreqPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLinuxReaderReadsSysfs(t *testing.T) {
	root := t.TempDir()
	writeMaxFreq(t, root, "3800000\n")

	r := &LinuxReader{store: sysfsStore{root: root}}
	mhz, err := r.MaxMHz(context.Background())
	if err != nil {
		t.Fatalf("MaxMHz() error = %v", err)
	}
	if mhz != 3800 {
		t.Fatalf("MaxMHz() = %d, want 3800", mhz)
	}
}

func TestLinuxReaderMissingCpufreq(t *testing.T) {
	r := &LinuxReader{store: sysfsStore{root: t.TempDir()}}

	_, err := r.MaxMHz(context.Background())
	if !errors.Is(err, hwerr.ErrQueryUnavailable) {
		t.Fatalf("MaxMHz() error = %v, want ErrQueryUnavailable", err)
	}
}

func TestLinuxReaderGarbage(t *testing.T) {
	root := t.TempDir()
	writeMaxFreq(t, root, "fast\n")

	r := &LinuxReader{store: sysfsStore{root: root}}
	if _, err := r.MaxMHz(context.Background()); !errors.Is(err, hwerr.ErrQueryUnavailable) {
		t.Fatalf("MaxMHz() error = %v, want ErrQueryUnavailable", err)
	}
}

func TestLinuxReaderZero(t *testing.T) {
	root := t.TempDir()
	writeMaxFreq(t, root, "0")

	r := &LinuxReader{store: sysfsStore{root: root}}
	mhz, err := r.MaxMHz(context.Background())
	if err != nil || mhz != 0 {
		t.Fatalf("MaxMHz() = %d, %v; want 0, nil", mhz, err)
	}
}
