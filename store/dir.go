package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-sdbf/bloom"
)

// DirStore keeps one record file per key in a local directory.
type DirStore struct {
	log  logger.Logger
	dir  string
	opts Options
}

// NewDirStore creates dir if needed.
func NewDirStore(log logger.Logger, dir string, opts ...Option) (*DirStore, error) {
	o := newOptions(opts...)
	if err := o.Format.check(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create store directory %s: %w", dir, err)
	}
	return &DirStore{log: log, dir: dir, opts: o}, nil
}

// Path returns the file that holds key.
func (s *DirStore) Path(key string) string {
	return filepath.Join(s.dir, key+s.opts.Format.Ext())
}

func (s *DirStore) Put(_ context.Context, key string, f *bloom.Filter) (string, error) {
	key, err := resolveKey(key, f)
	if err != nil {
		return "", err
	}
	path := s.Path(key)

	if s.opts.FailIfExists {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%w: %s", ErrExists, key)
		}
	}

	if s.opts.Format == FormatText {
		err = f.WriteFile(path)
	} else {
		var data []byte
		if data, err = s.opts.Format.encode(f); err == nil {
			err = os.WriteFile(path, data, 0o644)
		}
	}
	if err != nil {
		return "", err
	}
	s.log.Debugf("put %s: %d bytes, %d elements", path, f.Size(), f.ElemCount())
	return key, nil
}

func (s *DirStore) Get(_ context.Context, key string) (*bloom.Filter, error) {
	if err := CheckKey(key); err != nil {
		return nil, err
	}
	path := s.Path(key)

	var f *bloom.Filter
	var err error
	if s.opts.Format == FormatText {
		f, err = bloom.ReadFile(path)
	} else {
		var data []byte
		if data, err = os.ReadFile(path); err == nil {
			f, err = s.opts.Format.decode(data)
		}
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return f, err
}

// Delete removes key. Deleting a missing key is not an error.
func (s *DirStore) Delete(_ context.Context, key string) error {
	if err := CheckKey(key); err != nil {
		return err
	}
	err := os.Remove(s.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
