package processor

import (
	"context"
	"fmt"

	"github.com/CristiGvl/corecheck/internal/hwerr"
)

// DefaultMultiplier is the historical bus multiplier used to estimate the base clock
const DefaultMultiplier = 38

// Signature holds the base stepping, model and family fields of CPUID leaf 1.
//
// Extended model (EAX[19:16]) and extended family (EAX[27:20]) are not
// decoded. On parts that need them (base family 0xF, or family 6 with
// extended model bits set) Model and Family are incomplete.
type Signature struct {
	Stepping uint8 `json:"stepping" yaml:"stepping"`
	Model    uint8 `json:"model" yaml:"model"`
	Family   uint8 `json:"family" yaml:"family"`
}

// Validate checks that every field fits its 4-bit source
func (s Signature) Validate() error {
	for _, f := range []struct {
		name  string
		value uint8
	}{
		{"stepping", s.Stepping},
		{"model", s.Model},
		{"family", s.Family},
	} {
		if f.value > 0xF {
			return hwerr.Malformed("signature", fmt.Errorf("%s %d exceeds 4 bits", f.name, f.value))
		}
	}
	return nil
}

// Identity is a read-only snapshot of the processor.
//
// Cores and Threads both carry the OS-reported logical processor count;
// physical cores are not distinguished from SMT threads.
type Identity struct {
	Vendor       string       `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	Brand        string       `json:"brand" yaml:"brand"`
	Signature    *Signature   `json:"signature,omitempty" yaml:"signature,omitempty"`
	Architecture Architecture `json:"architecture" yaml:"architecture"`
	Cores        int          `json:"cores" yaml:"cores"`
	Threads      int          `json:"threads" yaml:"threads"`
}

// Reader interface for processor identification
type Reader interface {
	GetIdentity(ctx context.Context) (*Identity, error)
	Brand(ctx context.Context) (string, error)
	Signature(ctx context.Context) (Signature, error)
	Vendor(ctx context.Context) (string, error)
	Count(ctx context.Context) (int, error)
}

// NewReader creates a new processor reader for the current build
func NewReader() Reader {
	return newPlatformReader()
}

// BaseClock estimates the base clock in MHz as maxMHz/multiplier.
// The result is a heuristic from a fixed multiplier, not a hardware figure.
func BaseClock(maxMHz, multiplier int) (float64, error) {
	if multiplier <= 0 {
		return 0, hwerr.Malformed("base clock", fmt.Errorf("multiplier must be positive, got %d", multiplier))
	}
	return float64(maxMHz) / float64(multiplier), nil
}
