package bloom

import (
	"fmt"
)

// Filter is a fixed capacity, bit packed bloom filter over caller supplied
// 32 bit positions.
//
// A Filter has no internal synchronization. Insert, Fold and Union mutate
// the buffer in place, so callers sharing an instance must serialize access.
type Filter struct {
	buf     []byte
	bitMask uint64
	k       uint16

	elemCount uint64
	hamming   uint16
	hammingLg uint32

	maxElem  uint64
	maxFP    float64
	compSize int

	name string
	id   int32
}

// New creates an empty filter. size is rounded up to the next power of two
// with a floor of MinSize bytes.
func New(size int, hashCount uint16, maxElem uint64, maxFP float64) (*Filter, error) {
	if size > MaxSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrSizeTooLarge, size)
	}
	size = RoundSize(size)
	return &Filter{
		buf:     make([]byte, size),
		bitMask: BitMaskFor(size),
		k:       hashCount,
		maxElem: maxElem,
		maxFP:   maxFP,
	}, nil
}

// FromBuffer wraps an existing filter buffer, as produced by a digest, in a
// Filter. The buffer is not copied. The hash count is fixed at 5 and the
// hamming weight is recomputed from buf.
func FromBuffer(buf []byte, id int32, elemCount uint64) (*Filter, error) {
	if err := CheckSize(uint64(len(buf))); err != nil {
		return nil, fmt.Errorf("%w: %d bytes", err, len(buf))
	}
	f := &Filter{
		buf:       buf,
		bitMask:   BitMaskFor(len(buf)),
		k:         5,
		elemCount: elemCount,
		id:        id,
	}
	f.computeHamming()
	return f, nil
}

func (f *Filter) Size() int           { return len(f.buf) }
func (f *Filter) BitMask() uint64     { return f.bitMask }
func (f *Filter) HashCount() uint16   { return f.k }
func (f *Filter) ElemCount() uint64   { return f.elemCount }
func (f *Filter) MaxElem() uint64     { return f.maxElem }
func (f *Filter) MaxFP() float64      { return f.maxFP }
func (f *Filter) Name() string        { return f.name }
func (f *Filter) SetName(name string) { f.name = name }
func (f *Filter) ID() int32           { return f.id }
func (f *Filter) SetID(id int32)      { f.id = id }

// CompressedSize is the compressed length last recorded by
// UpdateCompressedSize, or read from a record.
func (f *Filter) CompressedSize() int { return f.compSize }

// Hamming returns the number of set bits, saturating at 65535.
func (f *Filter) Hamming() uint16 { return f.hamming }

// HammingLarge returns the exact number of set bits. Compare scores against
// this counter.
func (f *Filter) HammingLarge() uint32 { return f.hammingLg }

// BitsPerElem returns the number of filter bits per inserted element.
func (f *Filter) BitsPerElem() float64 {
	return float64(len(f.buf)<<3) / float64(f.elemCount)
}

// Bytes returns a copy of the filter buffer.
func (f *Filter) Bytes() []byte {
	return append([]byte(nil), f.buf...)
}

// Query reports whether all of the first HashCount positions are set.
//
// Returns (false,nil) if the filter says "definitely not present".
// Returns (true,nil) if the filter says "maybe present".
func (f *Filter) Query(positions []uint32) (bool, error) {
	if err := f.checkPositions(positions); err != nil {
		return false, err
	}
	for _, h := range positions[:f.k] {
		pos := uint64(h) & f.bitMask
		if f.buf[pos>>3]&bitTable[pos&7] == 0 {
			return false, nil
		}
	}
	return true, nil
}

// Insert sets the first HashCount positions.
//
// It returns true if at least one bit was previously unset, in which case
// the element count is incremented. Exact duplicates and full false
// positive collisions both return false.
func (f *Filter) Insert(positions []uint32) (bool, error) {
	if err := f.checkPositions(positions); err != nil {
		return false, err
	}
	var already int
	for _, h := range positions[:f.k] {
		pos := uint64(h) & f.bitMask
		k := pos >> 3
		if f.buf[k]&bitTable[pos&7] != 0 {
			already++
			continue
		}
		f.buf[k] |= bitTable[pos&7]
	}
	f.computeHamming()

	if already < int(f.k) {
		f.elemCount++
		return true, nil
	}
	return false, nil
}

func (f *Filter) checkPositions(positions []uint32) error {
	if len(positions) < int(f.k) {
		return fmt.Errorf("%w: got %d, need %d", ErrInvalidPositionCount, len(positions), f.k)
	}
	return nil
}
