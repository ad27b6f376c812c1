package bloom

import (
	"math"

	"github.com/steakknife/hamming"
)

// computeHamming recomputes both weight counters from the buffer. The
// compact counter saturates.
func (f *Filter) computeHamming() {
	f.hammingLg = popcount(f.buf)
	f.hamming = uint16(min(f.hammingLg, math.MaxUint16))
}

func popcount(buf []byte) uint32 {
	var n int
	for i := range wordCount(buf) {
		n += hamming.CountBitsUint64(word(buf, i))
	}
	return uint32(n)
}
