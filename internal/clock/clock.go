package clock

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/CristiGvl/corecheck/internal/hwerr"
)

// Reader interface for the rated maximum processor clock
type Reader interface {
	MaxMHz(ctx context.Context) (uint32, error)
}

// NewReader creates a new clock reader for the current platform
func NewReader() Reader {
	return newPlatformReader()
}

// ValueStore reads a single integer value from an OS configuration store
type ValueStore interface {
	Integer(key, name string) (uint64, error)
}

// readStoreMHz reads key/name from store and narrows it to MHz.
// Any failure to open or read the entry is reported as unavailable.
func readStoreMHz(store ValueStore, key, name string, divisor uint64) (uint32, error) {
	v, err := store.Integer(key, name)
	if err != nil {
		return 0, hwerr.Unavailable("max clock", fmt.Errorf("read %s %s: %w", key, name, err))
	}
	return toMHz(v, divisor)
}

func toMHz(v, divisor uint64) (uint32, error) {
	if divisor == 0 {
		return 0, hwerr.Malformed("max clock", errors.New("zero divisor"))
	}
	mhz := v / divisor
	if mhz > math.MaxUint32 {
		return 0, hwerr.Malformed("max clock", fmt.Errorf("%d MHz does not fit 32 bits", mhz))
	}
	return uint32(mhz), nil
}
