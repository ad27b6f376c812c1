package store

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/dgraph-io/badger/v4"
	"github.com/forestrie/go-sdbf/bloom"
)

// BadgerConfig configures the embedded key value store behind BadgerStore.
type BadgerConfig struct {
	// Path is the database directory. Ignored when InMemory is true.
	Path string
	// InMemory keeps the database in memory only.
	InMemory   bool
	SyncWrites bool
	// KeyPrefix namespaces the filter keys within the database.
	KeyPrefix string
}

func DefaultBadgerConfig(path string) BadgerConfig {
	return BadgerConfig{
		Path:       path,
		SyncWrites: true,
		KeyPrefix:  "sdbf/",
	}
}

func InMemoryBadgerConfig() BadgerConfig {
	return BadgerConfig{
		InMemory:  true,
		KeyPrefix: "sdbf/",
	}
}

// BadgerStore keeps filter records in an embedded badger database. It owns
// the database and must be closed.
type BadgerStore struct {
	log  logger.Logger
	cfg  BadgerConfig
	db   *badger.DB
	opts Options
}

func OpenBadgerStore(log logger.Logger, cfg BadgerConfig, opts ...Option) (*BadgerStore, error) {
	o := newOptions(opts...)
	if err := o.Format.check(); err != nil {
		return nil, err
	}
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("store: path is required for a persistent database")
	}

	var bopts badger.Options
	if cfg.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", cfg.Path, err)
		}
		bopts = badger.DefaultOptions(cfg.Path)
	}
	bopts = bopts.WithSyncWrites(cfg.SyncWrites).
		WithNumVersionsToKeep(1).
		WithLogger(&badgerLogger{log: log})

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &BadgerStore{log: log, cfg: cfg, db: db, opts: o}, nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func (s *BadgerStore) dbKey(key string) []byte {
	return []byte(s.cfg.KeyPrefix + key)
}

func (s *BadgerStore) Put(_ context.Context, key string, f *bloom.Filter) (string, error) {
	key, err := resolveKey(key, f)
	if err != nil {
		return "", err
	}
	data, err := s.opts.Format.encode(f)
	if err != nil {
		return "", err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		k := s.dbKey(key)
		if s.opts.FailIfExists {
			_, err := txn.Get(k)
			if err == nil {
				return fmt.Errorf("%w: %s", ErrExists, key)
			}
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}
		}
		return txn.Set(k, data)
	})
	if err != nil {
		return "", err
	}
	s.log.Debugf("put %s: %d bytes, %d elements", key, f.Size(), f.ElemCount())
	return key, nil
}

func (s *BadgerStore) Get(_ context.Context, key string) (*bloom.Filter, error) {
	if err := CheckKey(key); err != nil {
		return nil, err
	}
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.dbKey(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, err
	}
	return s.opts.Format.decode(data)
}

// Keys lists the stored keys in order.
func (s *BadgerStore) Keys(_ context.Context) ([]string, error) {
	var keys []string
	prefix := []byte(s.cfg.KeyPrefix)
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix})
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	return keys, err
}

// badgerLogger routes badger's internal logging to the store logger.
type badgerLogger struct {
	log logger.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.log.Infof("badger: error: "+format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.log.Infof("badger: warning: "+format, args...)
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.log.Debugf("badger: "+format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.log.Debugf("badger: "+format, args...)
}
