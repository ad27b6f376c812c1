package sdbf

import (
	"encoding/binary"
	"fmt"

	"github.com/forestrie/go-sdbf/bloom"
)

// Digest is a similarity digest: an ordered cluster of equally sized bloom
// filters packed into one buffer, plus a large summary filter.
//
// Digest does not derive positions from content. Filters are built by the
// caller and appended with AddFilter.
type Digest struct {
	name      string
	hashCount uint16
	bfSize    int
	maxElem   uint32

	buf        []byte
	hamming    []uint16
	elemCounts []uint64

	big *bloom.Filter
}

// NewDigest creates an empty digest for filters of cfg.BFSize bytes.
func NewDigest(name string, cfg Config) (*Digest, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	big, err := bloom.New(BigFilter, BigFilterHash, BigFilterElem, BigFilterFP)
	if err != nil {
		return nil, err
	}
	return &Digest{
		name:      name,
		hashCount: BigFilterHash,
		bfSize:    int(cfg.BFSize),
		maxElem:   cfg.MaxElem,
		big:       big,
	}, nil
}

func (d *Digest) Name() string             { return d.name }
func (d *Digest) HashCount() uint16        { return d.hashCount }
func (d *Digest) FilterSize() int          { return d.bfSize }
func (d *Digest) MaxElem() uint32          { return d.maxElem }
func (d *Digest) FilterCount() int         { return len(d.hamming) }
func (d *Digest) BigFilter() *bloom.Filter { return d.big }
func (d *Digest) Hamming(i int) uint16     { return d.hamming[i] }
func (d *Digest) ElemCount(i int) uint64   { return d.elemCounts[i] }

// AddFilter appends a copy of f's buffer to the cluster. f must be exactly
// FilterSize bytes.
func (d *Digest) AddFilter(f *bloom.Filter) error {
	if f.Size() != d.bfSize {
		return fmt.Errorf("%w: got %d, want %d", ErrFilterSize, f.Size(), d.bfSize)
	}
	start := len(d.buf)
	d.buf = append(d.buf, f.Bytes()...)
	d.hamming = append(d.hamming, filterHamming(d.buf[start:]))
	d.elemCounts = append(d.elemCounts, f.ElemCount())
	return nil
}

// Filter returns filter i of the cluster as a standalone bloom filter. The
// returned filter owns a copy of the bytes.
func (d *Digest) Filter(i int) (*bloom.Filter, error) {
	if i < 0 || i >= d.FilterCount() {
		return nil, fmt.Errorf("%w: %d of %d", ErrFilterIndex, i, d.FilterCount())
	}
	start := i * d.bfSize
	buf := append([]byte(nil), d.buf[start:start+d.bfSize]...)
	return bloom.FromBuffer(buf, int32(i), d.elemCounts[i])
}

// ComputeHamming recomputes the weight of every filter in the cluster.
func (d *Digest) ComputeHamming() {
	for i := range d.hamming {
		start := i * d.bfSize
		d.hamming[i] = filterHamming(d.buf[start : start+d.bfSize])
	}
}

// filterHamming counts set bits 16 bits at a time.
func filterHamming(buf []byte) uint16 {
	var n uint16
	for j := 0; j+1 < len(buf); j += 2 {
		n += uint16(BitCount16(binary.LittleEndian.Uint16(buf[j:])))
	}
	return n
}
