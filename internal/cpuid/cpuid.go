package cpuid

import "encoding/binary"

// CPUID leaves used by the processor decoder
const (
	LeafVendor      uint32 = 0x00000000
	LeafSignature   uint32 = 0x00000001
	LeafExtendedMax uint32 = 0x80000000
	LeafBrand1      uint32 = 0x80000002
	LeafBrand2      uint32 = 0x80000003
	LeafBrand3      uint32 = 0x80000004
)

// Registers holds the raw output of a single CPUID invocation
type Registers struct {
	EAX uint32 `json:"eax"`
	EBX uint32 `json:"ebx"`
	ECX uint32 `json:"ecx"`
	EDX uint32 `json:"edx"`
}

// Func issues CPUID for a leaf/sub-leaf pair
type Func func(leaf, subleaf uint32) Registers

// Bytes returns EAX, EBX, ECX and EDX concatenated in little-endian order
func (r Registers) Bytes() [16]byte {
	var b [16]byte
	binary.LittleEndian.PutUint32(b[0:], r.EAX)
	binary.LittleEndian.PutUint32(b[4:], r.EBX)
	binary.LittleEndian.PutUint32(b[8:], r.ECX)
	binary.LittleEndian.PutUint32(b[12:], r.EDX)
	return b
}
