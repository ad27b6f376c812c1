package sdbf

import (
	"fmt"
	"os"

	"github.com/forestrie/go-sdbf/bloom"
	"gopkg.in/yaml.v3"
)

// Config holds the digest generation parameters.
type Config struct {
	// ThreadCount is clamped to MaxThreads.
	ThreadCount uint32 `yaml:"thread_count"`
	EntrWinSize uint32 `yaml:"entr_win_size"`
	BFSize      uint32 `yaml:"bf_size"`
	PopWinSize  uint32 `yaml:"pop_win_size"`
	BlockSize   uint32 `yaml:"block_size"`
	// MaxElem is the element capacity of each filter in stream mode.
	MaxElem uint32 `yaml:"max_elem"`
	// MaxElemDD is the element capacity of each filter in block mode.
	MaxElemDD uint32 `yaml:"max_elem_dd"`
	Warnings  bool   `yaml:"warnings"`
	Threshold uint8  `yaml:"threshold"`
	Popcnt    bool   `yaml:"popcnt"`
}

// NewConfig returns a Config with the fixed window and block parameters and
// the given capacities.
func NewConfig(threadCount uint32, warnings bool, maxElem, maxElemDD uint32) Config {
	return Config{
		ThreadCount: min(threadCount, MaxThreads),
		EntrWinSize: 64,
		BFSize:      BFSize,
		PopWinSize:  PopWinSize,
		BlockSize:   4 * KB,
		MaxElem:     maxElem,
		MaxElemDD:   maxElemDD,
		Warnings:    warnings,
		Threshold:   16,
	}
}

func DefaultConfig() Config {
	return NewConfig(1, false, MaxElemCount, MaxElemCountDD)
}

// LoadConfig overlays the YAML document at path on DefaultConfig. Fields
// absent from the document keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	cfg.ThreadCount = min(cfg.ThreadCount, MaxThreads)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the parameters a digest depends on.
func (c Config) Validate() error {
	if c.ThreadCount < 1 {
		return fmt.Errorf("%w: thread_count must be >= 1", ErrInvalidConfig)
	}
	if err := bloom.CheckSize(uint64(c.BFSize)); err != nil || c.BFSize < bloom.MinSize || c.BFSize > MaxBFSize {
		return fmt.Errorf("%w: bf_size %d", ErrInvalidConfig, c.BFSize)
	}
	if c.PopWinSize != PopWinSize {
		return fmt.Errorf("%w: pop_win_size must be %d", ErrInvalidConfig, PopWinSize)
	}
	if c.MaxElem == 0 || c.MaxElemDD == 0 {
		return fmt.Errorf("%w: element capacities must be non zero", ErrInvalidConfig)
	}
	return nil
}
