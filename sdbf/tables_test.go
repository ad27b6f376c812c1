package sdbf

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitCount16(t *testing.T) {
	for _, v := range []uint16{0, 1, 0x8001, 0x00FF, 0xF0F0, 0xFFFF} {
		assert.Equal(t, uint8(bits.OnesCount16(v)), BitCount16(v), "%#04x", v)
	}
}

func TestEntropyTerm(t *testing.T) {
	assert.Zero(t, EntropyTerm(0))
	assert.Zero(t, EntropyTerm(PopWinSize))
	assert.Equal(t, uint64(85333), EntropyTerm(32))
	assert.Zero(t, EntropyTerm(-1))
	assert.Zero(t, EntropyTerm(PopWinSize+1))

	// -p*log2(p) peaks at p = 1/e, roughly 24 of 64.
	assert.Greater(t, EntropyTerm(24), EntropyTerm(8))
	assert.Greater(t, EntropyTerm(24), EntropyTerm(48))
}

func TestEntropyRank(t *testing.T) {
	assert.Zero(t, EntropyRank(0))
	assert.Equal(t, uint32(101), EntropyRank(100<<EntrPower))
	assert.Equal(t, uint32(102), EntropyRank(101<<EntrPower+1023))
	assert.Zero(t, EntropyRank(EntrScale))
	assert.Zero(t, EntropyRank(EntrScale*2))
}

func TestCutoffTables(t *testing.T) {
	tests := []struct {
		name string
		fn   func(int) uint32
		mn   int
		want uint32
	}{
		{"256 first", Cutoff256, 0, 1250},
		{"256 fifth", Cutoff256, 4, 1006},
		{"256 last", Cutoff256, 148, 2},
		{"256 clamped", Cutoff256, 1000, 2},
		{"256 negative", Cutoff256, -3, 1250},
		{"64 first", Cutoff64, 0, 354},
		{"64 fifth", Cutoff64, 4, 277},
		{"64 last", Cutoff64, 148, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.mn))
		})
	}
}
