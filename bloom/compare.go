package bloom

import (
	"math"

	"github.com/steakknife/hamming"
)

// NotComparable is returned by Compare for filters of differing sizes. It is
// distinct from a score of 0, which means no meaningful similarity.
const NotComparable = -1

// Compare scores the similarity of f and other in [0, 100].
//
// The raw overlap counts, per 64 bit word, whether bit 0 of the words'
// intersection is set. The overlap in excess of the chance cutoff for the
// pair's density is normalised against the smaller hamming weight. Filters
// holding fewer than MinCompareElems elements score 0. scale is accepted for
// interface compatibility and does not affect the score.
//
// Unlike Union, a size mismatch is reported in band as NotComparable rather
// than as an error.
func (f *Filter) Compare(other *Filter, scale float64) int {
	return f.compare(other, scale, lowBitOverlap)
}

// CompareIntersection is Compare with the raw overlap taken as the full
// population count of each word's intersection.
func (f *Filter) CompareIntersection(other *Filter, scale float64) int {
	return f.compare(other, scale, hamming.CountBitsUint64)
}

func lowBitOverlap(w uint64) int { return int(w & 1) }

func (f *Filter) compare(other *Filter, _ float64, overlap func(uint64) int) int {
	if len(f.buf) != len(other.buf) {
		return NotComparable
	}

	var result int64
	for i := range wordCount(f.buf) {
		result += int64(overlap(word(f.buf, i) & word(other.buf, i)))
	}

	x, y := f.elemCount, other.elemCount
	if x < MinCompareElems || y < MinCompareElems {
		return 0
	}

	maxEst := int64(min(f.hammingLg, other.hammingLg))
	m := float64(len(f.buf) * 8)

	mn := int(math.Round(2 * m / (float64(x) + float64(y))))
	cutoff := Cutoff(mn)
	if cutoff < 0 || result <= cutoff {
		return 0
	}

	return int(math.Round(100 * float64(result-cutoff) / float64(maxEst-cutoff)))
}
