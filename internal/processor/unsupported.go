package processor

import (
	"context"
	"fmt"
	"runtime"

	"github.com/CristiGvl/corecheck/internal/hwerr"
)

// UnsupportedReader serves builds that cannot issue CPUID. Architecture and
// processor count are still reported.
type UnsupportedReader struct {
	count func(ctx context.Context) (int, error)
}

func errNoCPUID(op string) error {
	return hwerr.Unsupported(op, fmt.Errorf("CPUID not available on %s", runtime.GOARCH))
}

// Vendor returns an unsupported error
func (r *UnsupportedReader) Vendor(ctx context.Context) (string, error) {
	return "", errNoCPUID("vendor")
}

// Brand returns an unsupported error
func (r *UnsupportedReader) Brand(ctx context.Context) (string, error) {
	return "", errNoCPUID("brand")
}

// Signature returns an unsupported error
func (r *UnsupportedReader) Signature(ctx context.Context) (Signature, error) {
	return Signature{}, errNoCPUID("signature")
}

// Count returns the OS-reported processor count
func (r *UnsupportedReader) Count(ctx context.Context) (int, error) {
	return r.count(ctx)
}

// GetIdentity returns architecture and counts with no decoded fields
func (r *UnsupportedReader) GetIdentity(ctx context.Context) (*Identity, error) {
	count, err := r.count(ctx)
	if err != nil {
		return nil, err
	}
	return &Identity{
		Architecture: Build(),
		Cores:        count,
		Threads:      count,
	}, nil
}
