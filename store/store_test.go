package store

import (
	"context"
	"testing"

	"github.com/forestrie/go-sdbf/bloom"
	"github.com/forestrie/go-sdbf/sdbftesting"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) sdbftesting.TestContext {
	return sdbftesting.NewTestContext(t, sdbftesting.TestConfig{
		Seed:            7,
		TestLabelPrefix: "store",
	})
}

func requireSameFilter(t *testing.T, want, got *bloom.Filter) {
	t.Helper()
	require.NotNil(t, got)
	assert.Equal(t, want.Bytes(), got.Bytes())
	assert.Equal(t, want.HashCount(), got.HashCount())
	assert.Equal(t, want.ElemCount(), got.ElemCount())
	assert.Equal(t, want.Name(), got.Name())
}

// exerciseStore runs the behaviour every Store implementation shares.
func exerciseStore(t *testing.T, tc sdbftesting.TestContext, s Store) {
	ctx := context.Background()

	f, elems := tc.NewFilter(256, 5, 40)
	f.SetName("case-17/disk.img")

	key, err := s.Put(ctx, "", f)
	require.NoError(t, err)
	assert.Equal(t, "case-17_disk.img", key)

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	requireSameFilter(t, f, got)
	tc.RequireMembers(got, elems)

	unnamed, _ := tc.NewFilter(64, 5, 3)
	key, err = s.Put(ctx, "", unnamed)
	require.NoError(t, err)
	_, err = uuid.Parse(key)
	require.NoError(t, err, "unnamed filters get a uuid key")

	got, err = s.Get(ctx, key)
	require.NoError(t, err)
	requireSameFilter(t, unnamed, got)

	// Overwrite is the default.
	_, err = f.Insert(tc.Positions(5))
	require.NoError(t, err)
	_, err = s.Put(ctx, "explicit", f)
	require.NoError(t, err)
	_, err = s.Put(ctx, "explicit", unnamed)
	require.NoError(t, err)
	got, err = s.Get(ctx, "explicit")
	require.NoError(t, err)
	assert.Equal(t, unnamed.Bytes(), got.Bytes())

	_, err = s.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.Get(ctx, "../escape")
	require.ErrorIs(t, err, ErrInvalidKey)
	_, err = s.Put(ctx, "a/b", f)
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestNewKey(t *testing.T) {
	f, err := bloom.New(64, 5, 0, 0)
	require.NoError(t, err)

	f.SetName("dir:file name.bin")
	assert.Equal(t, "dir_file_name.bin", NewKey(f))

	f.SetName("")
	first, second := NewKey(f), NewKey(f)
	assert.NotEqual(t, first, second)
	_, err = uuid.Parse(first)
	require.NoError(t, err)
}

func TestCheckKey(t *testing.T) {
	for _, key := range []string{"", ".", "..", "a/b", `a\b`, "../x"} {
		require.ErrorIs(t, CheckKey(key), ErrInvalidKey, "%q", key)
	}
	for _, key := range []string{"a", "a.b", "..x", "uuid-like_key"} {
		require.NoError(t, CheckKey(key), "%q", key)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "text", FormatText.String())
	assert.Equal(t, "cbor", FormatBinary.String())
	assert.Equal(t, ".sdbf", FormatText.Ext())
	assert.Equal(t, ".sdbfc", FormatBinary.Ext())
	require.ErrorIs(t, Format(9).check(), ErrFormat)

	f, err := bloom.New(64, 5, 100, 0.5)
	require.NoError(t, err)
	f.SetID(3)

	for _, format := range []Format{FormatText, FormatBinary} {
		data, err := format.encode(f)
		require.NoError(t, err)
		got, err := format.decode(data)
		require.NoError(t, err)
		requireSameFilter(t, f, got)
	}

	// Only the binary record carries the capacity hints and id.
	data, err := FormatBinary.encode(f)
	require.NoError(t, err)
	got, err := FormatBinary.decode(data)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), got.MaxElem())
	assert.Equal(t, int32(3), got.ID())
}

func TestOptions(t *testing.T) {
	o := newOptions(WithFormat(FormatBinary), WithFailIfExists(), WithPrefix("p/"), WithTags(map[string]string{"a": "b"}))
	assert.Equal(t, Options{
		Format:       FormatBinary,
		FailIfExists: true,
		Prefix:       "p/",
		Tags:         map[string]string{"a": "b"},
	}, o)

	// Options aimed at another target are ignored.
	other := struct{}{}
	WithFormat(FormatBinary)(&other)
}
