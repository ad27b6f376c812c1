package bloom

import "errors"

const (
	// MinSize is the smallest buffer, in bytes, New will allocate.
	MinSize = 64

	// FoldFloor is the buffer size at which Fold stops halving.
	FoldFloor = 32

	// MaxSize is the largest buffer whose bit addresses fit a 32 bit position.
	MaxSize = 1 << 29

	// MinCompareElems is the element count below which Compare reports no
	// similarity.
	MinCompareElems = 32

	// MagicIdx is the leading token of a text record header.
	MagicIdx = "sdbf-idx"

	// BitOrderLSB0 means bit 0 is the least-significant bit of byte 0.
	BitOrderLSB0 uint8 = 0

	// wordBytes is the width of the words used by the bulk operations.
	wordBytes = 8
)

var (
	ErrInvalidPositionCount = errors.New("bloom: fewer positions than hash count")
	ErrSizeMismatch         = errors.New("bloom: filters differ in size")
	ErrSizeTooLarge         = errors.New("bloom: size exceeds the addressable maximum")
	ErrInvalidSize          = errors.New("bloom: size must be a power of two in the supported range")

	ErrMissingField   = errors.New("bloom: record field missing")
	ErrInvalidInteger = errors.New("bloom: record integer field invalid")
	ErrInvalidHex     = errors.New("bloom: record payload is not valid hex")
	ErrInvalidRecord  = errors.New("bloom: binary record invalid")

	ErrDecompressionFailed = errors.New("bloom: payload decompression failed")
	ErrBlockTruncated      = errors.New("bloom: compressed block truncated")
	ErrBlockOffset         = errors.New("bloom: compressed block has an invalid back-reference offset")
	ErrPayloadSize         = errors.New("bloom: decompressed payload does not match the declared size")
)

// bitTable is the single-bit lookup table indexed by the bit number within a byte.
var bitTable = [8]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80}

// bitMasks32 holds 2^(i+1)-1 for i in [0, 32).
var bitMasks32 = [32]uint32{
	0x01, 0x03, 0x07, 0x0F, 0x1F, 0x3F, 0x7F, 0xFF,
	0x01FF, 0x03FF, 0x07FF, 0x0FFF, 0x1FFF, 0x3FFF, 0x7FFF, 0xFFFF,
	0x01FFFF, 0x03FFFF, 0x07FFFF, 0x0FFFFF, 0x1FFFFF, 0x3FFFFF, 0x7FFFFF, 0xFFFFFF,
	0x01FFFFFF, 0x03FFFFFF, 0x07FFFFFF, 0x0FFFFFFF, 0x1FFFFFFF, 0x3FFFFFFF, 0x7FFFFFFF, 0xFFFFFFFF,
}
