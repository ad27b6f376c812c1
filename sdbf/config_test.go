package sdbf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, Config{
		ThreadCount: 1,
		EntrWinSize: 64,
		BFSize:      256,
		PopWinSize:  64,
		BlockSize:   4096,
		MaxElem:     160,
		MaxElemDD:   192,
		Threshold:   16,
	}, cfg)
	require.NoError(t, cfg.Validate())
}

func TestNewConfigClampsThreads(t *testing.T) {
	cfg := NewConfig(10000, true, 10, 20)
	assert.Equal(t, uint32(MaxThreads), cfg.ThreadCount)
	assert.True(t, cfg.Warnings)
	assert.Equal(t, uint32(10), cfg.MaxElem)
	assert.Equal(t, uint32(20), cfg.MaxElemDD)
}

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sdbf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		check   func(t *testing.T, cfg Config)
		wantErr error
	}{
		{
			name: "overlay",
			doc:  "thread_count: 4\nmax_elem: 200\npopcnt: true\n",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, uint32(4), cfg.ThreadCount)
				assert.Equal(t, uint32(200), cfg.MaxElem)
				assert.True(t, cfg.Popcnt)
				assert.Equal(t, uint32(192), cfg.MaxElemDD)
				assert.Equal(t, uint32(256), cfg.BFSize)
			},
		},
		{
			name: "threads clamped",
			doc:  "thread_count: 9000\n",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, uint32(MaxThreads), cfg.ThreadCount)
			},
		},
		{name: "bad yaml", doc: "thread_count: [1\n", wantErr: ErrInvalidConfig},
		{name: "zero threads", doc: "thread_count: 0\n", wantErr: ErrInvalidConfig},
		{name: "filter size not power of two", doc: "bf_size: 100\n", wantErr: ErrInvalidConfig},
		{name: "filter size too large", doc: "bf_size: 8192\n", wantErr: ErrInvalidConfig},
		{name: "pop window", doc: "pop_win_size: 32\n", wantErr: ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.doc))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
