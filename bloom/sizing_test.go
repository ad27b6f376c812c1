package bloom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundSize(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"zero rounds to the floor", 0, 64},
		{"below the floor", 10, 64},
		{"exactly the floor", 64, 64},
		{"just above the floor", 65, 128},
		{"power of two is kept", 256, 256},
		{"between powers", 300, 512},
		{"large", 16000, 16384},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RoundSize(tt.size))
		})
	}
}

func TestBitMaskFor(t *testing.T) {
	for _, size := range []int{32, 64, 128, 256, 4096, 16384, MaxSize} {
		require.Equal(t, uint64(size*8-1), BitMaskFor(size), "size %d", size)
	}
	require.Equal(t, uint64(0xFFFFFFFF), BitMaskFor(MaxSize))
}

func TestIsPow2(t *testing.T) {
	require.True(t, IsPow2(1))
	require.True(t, IsPow2(16))
	require.False(t, IsPow2(0))
	require.False(t, IsPow2(17))
	require.False(t, IsPow2(18))
}

func TestCheckSize(t *testing.T) {
	require.NoError(t, CheckSize(32))
	require.NoError(t, CheckSize(64))
	require.NoError(t, CheckSize(MaxSize))
	require.ErrorIs(t, CheckSize(16), ErrInvalidSize)
	require.ErrorIs(t, CheckSize(100), ErrInvalidSize)
	require.ErrorIs(t, CheckSize(MaxSize*2), ErrInvalidSize)
}
