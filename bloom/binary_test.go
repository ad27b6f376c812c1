package bloom

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryRoundTrip(t *testing.T) {
	f := newFilter(t, 256, 5)
	require.True(t, insert(t, f, data1))
	f.SetName("a:b")
	f.SetID(12)

	data, err := f.MarshalBinary()
	require.NoError(t, err)

	got, err := DecodeBinary(data)
	require.NoError(t, err)
	requireSameFilter(t, f, got)
	assert.Equal(t, int32(12), got.ID())
	assert.Equal(t, uint64(1000), got.MaxElem())
	assert.Equal(t, 10.0, got.MaxFP())

	again, err := got.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, data, again, "encoding must be deterministic")
}

func TestBinaryErrors(t *testing.T) {
	f := newFilter(t, 64, 5)
	require.True(t, insert(t, f, data1))
	before := f.Bytes()

	require.ErrorIs(t, f.UnmarshalBinary([]byte{0xff, 0x00}), ErrInvalidRecord)

	bad, err := cbor.Marshal(binaryRecord{Size: 100, HashCount: 5, Compressed: literalBlock(make([]byte, 100))})
	require.NoError(t, err)
	require.ErrorIs(t, f.UnmarshalBinary(bad), ErrInvalidSize)

	short, err := cbor.Marshal(binaryRecord{Size: 64, HashCount: 5, Compressed: literalBlock(make([]byte, 32))})
	require.NoError(t, err)
	require.ErrorIs(t, f.UnmarshalBinary(short), ErrPayloadSize)

	assert.Equal(t, before, f.Bytes())
	assert.Equal(t, uint64(1), f.ElemCount())
}
