package processor

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/CristiGvl/corecheck/internal/cpuid"
	"github.com/CristiGvl/corecheck/internal/hwerr"
)

// DecodeSignature masks stepping, model and family out of leaf 1 EAX
func DecodeSignature(eax uint32) Signature {
	return Signature{
		Stepping: uint8(eax & 0xF),
		Model:    uint8((eax >> 4) & 0xF),
		Family:   uint8((eax >> 8) & 0xF),
	}
}

// DecodeBrand joins the outputs of the three brand leaves and cuts the
// result at the first NUL, or at 48 bytes when there is none.
func DecodeBrand(parts [3]cpuid.Registers) string {
	var buf [48]byte
	for i, r := range parts {
		b := r.Bytes()
		copy(buf[i*16:], b[:])
	}

	n := bytes.IndexByte(buf[:], 0)
	if n < 0 {
		n = len(buf)
	}
	return string(buf[:n])
}

// DecodeVendor returns the 12-character vendor string of leaf 0 (EBX, EDX, ECX)
func DecodeVendor(r cpuid.Registers) string {
	b := cpuid.Registers{EAX: r.EBX, EBX: r.EDX, ECX: r.ECX}.Bytes()
	return string(bytes.TrimRight(b[:12], "\x00"))
}

func isPrintable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// CPUIDReader decodes processor identity from CPUID output
type CPUIDReader struct {
	query cpuid.Func
	count func(ctx context.Context) (int, error)
}

func (r *CPUIDReader) maxBasicLeaf() uint32 {
	return r.query(cpuid.LeafVendor, 0).EAX
}

// Vendor returns the manufacturer ID string
func (r *CPUIDReader) Vendor(ctx context.Context) (string, error) {
	vendor := DecodeVendor(r.query(cpuid.LeafVendor, 0))
	if !isPrintable(vendor) {
		return "", hwerr.Malformed("vendor", fmt.Errorf("non-printable vendor %q", vendor))
	}
	return vendor, nil
}

// Brand returns the brand string, after checking that the extended brand
// leaves are implemented.
func (r *CPUIDReader) Brand(ctx context.Context) (string, error) {
	maxExt := r.query(cpuid.LeafExtendedMax, 0).EAX
	if maxExt < cpuid.LeafBrand3 {
		return "", hwerr.Unsupported("brand", fmt.Errorf("highest extended leaf %#x below %#x", maxExt, cpuid.LeafBrand3))
	}

	brand := DecodeBrand([3]cpuid.Registers{
		r.query(cpuid.LeafBrand1, 0),
		r.query(cpuid.LeafBrand2, 0),
		r.query(cpuid.LeafBrand3, 0),
	})
	if !isPrintable(brand) {
		return "", hwerr.Malformed("brand", fmt.Errorf("non-printable brand %q", brand))
	}
	return brand, nil
}

// Signature returns stepping, model and family from leaf 1
func (r *CPUIDReader) Signature(ctx context.Context) (Signature, error) {
	if r.maxBasicLeaf() < cpuid.LeafSignature {
		return Signature{}, hwerr.Unsupported("signature", errors.New("leaf 1 not implemented"))
	}

	sig := DecodeSignature(r.query(cpuid.LeafSignature, 0).EAX)
	if err := sig.Validate(); err != nil {
		return Signature{}, err
	}
	return sig, nil
}

// Count returns the OS-reported processor count
func (r *CPUIDReader) Count(ctx context.Context) (int, error) {
	return r.count(ctx)
}

// GetIdentity assembles a full snapshot. A processor without brand leaves
// yields an empty brand rather than an error.
func (r *CPUIDReader) GetIdentity(ctx context.Context) (*Identity, error) {
	info := &Identity{Architecture: Build()}

	vendor, err := r.Vendor(ctx)
	if err != nil {
		return nil, err
	}
	info.Vendor = vendor

	brand, err := r.Brand(ctx)
	switch {
	case errors.Is(err, hwerr.ErrUnsupportedCapability):
		brand = ""
	case err != nil:
		return nil, err
	}
	info.Brand = brand

	sig, err := r.Signature(ctx)
	switch {
	case errors.Is(err, hwerr.ErrUnsupportedCapability):
	case err != nil:
		return nil, err
	default:
		info.Signature = &sig
	}

	count, err := r.count(ctx)
	if err != nil {
		return nil, err
	}
	info.Cores = count
	info.Threads = count

	return info, nil
}
