package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/forestrie/go-sdbf/bloom"
	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("store: filter not found")
	ErrExists     = errors.New("store: filter already exists")
	ErrInvalidKey = errors.New("store: invalid key")
	ErrFormat     = errors.New("store: unknown record format")
)

// Store persists filter records by key.
type Store interface {
	// Put writes f under key and returns the key used. An empty key is
	// replaced by NewKey(f).
	Put(ctx context.Context, key string, f *bloom.Filter) (string, error)
	// Get reads the filter stored under key. A missing key is ErrNotFound.
	Get(ctx context.Context, key string) (*bloom.Filter, error)
}

// NewKey derives a key for f from its name. Unnamed filters get a random
// key.
func NewKey(f *bloom.Filter) string {
	if name := sanitizeKey(f.Name()); name != "" {
		return name
	}
	return uuid.NewString()
}

func sanitizeKey(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, name)
}

// CheckKey rejects keys that could escape the store namespace.
func CheckKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

func resolveKey(key string, f *bloom.Filter) (string, error) {
	if key == "" {
		key = NewKey(f)
	}
	return key, CheckKey(key)
}
