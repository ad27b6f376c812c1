package sdbftesting

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	mrand "math/rand"
	"os"
	"testing"

	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-sdbf/bloom"
	"github.com/stretchr/testify/require"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
	rng *mrand.Rand
}

type TestConfig struct {
	// Seed fixes the generated positions so the data is the same from run
	// to run.
	Seed            int64
	TestLabelPrefix string
	// LogLevel defaults to INFO.
	LogLevel string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	level := cfg.LogLevel
	if level == "" {
		level = "INFO"
	}
	logger.New(level)

	return TestContext{
		Log: logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
		T:   t,
		rng: mrand.New(mrand.NewSource(cfg.Seed)),
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// Positions returns k pseudo random positions.
func (c *TestContext) Positions(k int) []uint32 {
	p := make([]uint32, k)
	for i := range p {
		p[i] = c.rng.Uint32()
	}
	return p
}

// Elements returns n sets of k positions.
func (c *TestContext) Elements(n, k int) [][]uint32 {
	elems := make([][]uint32, n)
	for i := range elems {
		elems[i] = c.Positions(k)
	}
	return elems
}

// NewFilter returns a size byte filter with n random elements inserted, and
// the elements.
func (c *TestContext) NewFilter(size int, k uint16, n int) (*bloom.Filter, [][]uint32) {
	f, err := bloom.New(size, k, uint64(n), 0.01)
	require.NoError(c.T, err)
	elems := c.Elements(n, int(k))
	for _, e := range elems {
		_, err := f.Insert(e)
		require.NoError(c.T, err)
	}
	return f, elems
}

// RequireMembers fails the test if any element is not reported present.
func (c *TestContext) RequireMembers(f *bloom.Filter, elems [][]uint32) {
	c.T.Helper()
	for i, e := range elems {
		ok, err := f.Query(e)
		require.NoError(c.T, err)
		require.True(c.T, ok, "element %d missing", i)
	}
}

func GenerateECKey(t *testing.T, curve elliptic.Curve) ecdsa.PrivateKey {
	privateKey, err := ecdsa.GenerateKey(curve, rand.Reader)
	require.NoError(t, err)
	return *privateKey
}

// NewBlobStorer connects to the blob store emulator. Tests are skipped when
// AZURITE_BLOB_EMULATOR_URL is not set.
func NewBlobStorer(t *testing.T, container string) *azblob.Storer {
	if os.Getenv("AZURITE_BLOB_EMULATOR_URL") == "" {
		t.Skip("AZURITE_BLOB_EMULATOR_URL not set, skipping blob store test")
	}
	storer, err := azblob.NewDev(azblob.NewDevConfigFromEnv(), container)
	if err != nil {
		t.Fatalf("failed to connect to blob store emulator: %v", err)
	}
	client := storer.GetServiceClient()
	// Note: we expect an 'already exists' error here and ignore it.
	_, _ = client.CreateContainer(context.Background(), container, nil)
	return storer
}
