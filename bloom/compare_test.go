package bloom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairFilter inserts one two-position element per entry of words, setting
// bit b of each word in the pair.
func pairFilter(t *testing.T, size int, pairs [][2]uint32, b uint32) *Filter {
	t.Helper()
	f := newFilter(t, size, 2)
	for _, p := range pairs {
		require.True(t, insert(t, f, []uint32{p[0]*64 + b, p[1]*64 + b}))
	}
	return f
}

func wordPairs(first, n uint32) [][2]uint32 {
	pairs := make([][2]uint32, 0, n)
	for j := range n {
		w := first + 2*j
		pairs = append(pairs, [2]uint32{w, w + 1})
	}
	return pairs
}

func TestCutoff(t *testing.T) {
	assert.Equal(t, int64(86511), Cutoff(0))
	assert.Equal(t, int64(67010), Cutoff(4))
	assert.Equal(t, int64(218), Cutoff(128))
	assert.Equal(t, int64(217), Cutoff(129))
	assert.Equal(t, int64(90), Cutoff(256))
	assert.Equal(t, int64(0), Cutoff(346))
	assert.Equal(t, int64(-154), Cutoff(500))
}

func TestCompareSizeMismatch(t *testing.T) {
	a := newFilter(t, 64, 5)
	b := newFilter(t, 128, 5)
	assert.Equal(t, NotComparable, a.Compare(b, 0.3))
	assert.Equal(t, NotComparable, b.Compare(a, 0.3))
	assert.Equal(t, NotComparable, a.CompareIntersection(b, 0.3))
}

func TestCompareTooFewElements(t *testing.T) {
	a := newFilter(t, 10, 5)
	require.True(t, insert(t, a, data1))
	assert.Equal(t, 0, a.Compare(a, 0.3))

	// 31 elements on one side is still too few.
	full := pairFilter(t, 16384, wordPairs(0, 1024), 0)
	few := pairFilter(t, 16384, wordPairs(0, 31), 0)
	assert.Equal(t, 0, full.Compare(few, 0.3))
	assert.Equal(t, 0, few.Compare(full, 0.3))
}

func TestCompareScores(t *testing.T) {
	const size = 16384

	tests := []struct {
		name         string
		a, b         func(t *testing.T) *Filter
		want         int
		intersection int
	}{
		{
			name:         "identical at table edge",
			a:            func(t *testing.T) *Filter { return pairFilter(t, size, wordPairs(0, 1024), 0) },
			b:            func(t *testing.T) *Filter { return pairFilter(t, size, wordPairs(0, 1024), 0) },
			want:         100,
			intersection: 100,
		},
		{
			name: "half shared at table edge",
			a:    func(t *testing.T) *Filter { return pairFilter(t, size, wordPairs(0, 1024), 0) },
			b: func(t *testing.T) *Filter {
				f := pairFilter(t, size, wordPairs(0, 512), 0)
				for _, p := range wordPairs(0, 512) {
					require.True(t, insert(t, f, []uint32{p[0]*64 + 1, p[1]*64 + 1}))
				}
				return f
			},
			// round(100 * (1024-218) / (2048-218))
			want:         44,
			intersection: 44,
		},
		{
			name: "extrapolated cutoff",
			a:    func(t *testing.T) *Filter { return pairFilter(t, size, wordPairs(0, 512), 0) },
			b: func(t *testing.T) *Filter {
				f := pairFilter(t, size, wordPairs(0, 256), 0)
				for _, p := range wordPairs(0, 256) {
					require.True(t, insert(t, f, []uint32{p[0]*64 + 1, p[1]*64 + 1}))
				}
				return f
			},
			// mn 256 gives cutoff 90: round(100 * (512-90) / (1024-90))
			want:         45,
			intersection: 45,
		},
		{
			name: "two bits per word",
			a: func(t *testing.T) *Filter {
				f := newFilter(t, size, 2)
				for w := range uint32(1024) {
					require.True(t, insert(t, f, []uint32{w * 64, w*64 + 1}))
				}
				return f
			},
			b: func(t *testing.T) *Filter {
				f := newFilter(t, size, 2)
				for w := range uint32(1024) {
					require.True(t, insert(t, f, []uint32{w * 64, w*64 + 1}))
				}
				return f
			},
			// Only bit 0 counts towards the raw overlap.
			want:         44,
			intersection: 100,
		},
		{
			name:         "negative cutoff",
			a:            func(t *testing.T) *Filter { return pairFilter(t, size, wordPairs(0, 32), 0) },
			b:            func(t *testing.T) *Filter { return pairFilter(t, size, wordPairs(0, 32), 0) },
			want:         0,
			intersection: 0,
		},
		{
			name:         "overlap below cutoff",
			a:            func(t *testing.T) *Filter { return pairFilter(t, 1024, wordPairs(0, 32), 0) },
			b:            func(t *testing.T) *Filter { return pairFilter(t, 1024, wordPairs(0, 32), 0) },
			want:         0,
			intersection: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := tt.a(t), tt.b(t)
			assert.Equal(t, tt.want, a.Compare(b, 0.3))
			assert.Equal(t, tt.want, b.Compare(a, 0.3))
			assert.Equal(t, tt.want, a.Compare(b, 1.0), "scale must not affect the score")
			assert.Equal(t, tt.intersection, a.CompareIntersection(b, 0.3))
		})
	}
}

func TestCompareDoesNotMutate(t *testing.T) {
	a := pairFilter(t, 16384, wordPairs(0, 1024), 0)
	b := pairFilter(t, 16384, wordPairs(0, 512), 0)
	beforeA, beforeB := a.Bytes(), b.Bytes()

	a.Compare(b, 0.3)
	assert.Equal(t, beforeA, a.Bytes())
	assert.Equal(t, beforeB, b.Bytes())
}
