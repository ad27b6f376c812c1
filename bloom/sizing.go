package bloom

import "math/bits"

// RoundSize returns the buffer size New allocates for a requested size:
// the next power of two, never less than MinSize.
func RoundSize(size int) int {
	if size <= MinSize {
		return MinSize
	}
	if IsPow2(uint(size)) {
		return size
	}
	return 1 << bits.Len(uint(size))
}

// IsPow2 determines if size is a perfect power of 2.
func IsPow2(size uint) bool {
	return size != 0 && size&(size-1) == 0
}

// logSize counts the right shifts needed to reduce size to zero.
func logSize(size int) int {
	n := 0
	for temp := size; temp != 0; temp >>= 1 {
		n++
	}
	return n
}

// BitMaskFor returns the address mask for a buffer of size bytes.
//
// For a power of two size this is the number of addressable bits minus one.
// The caller must ensure size is a power of two no larger than MaxSize.
func BitMaskFor(size int) uint64 {
	return uint64(bitMasks32[1+logSize(size)])
}

// CheckSize validates a declared buffer size read from a record. Sizes below
// MinSize are accepted down to FoldFloor so folded filters round trip.
func CheckSize(size uint64) error {
	if size < FoldFloor || size > MaxSize || !IsPow2(uint(size)) {
		return ErrInvalidSize
	}
	return nil
}
