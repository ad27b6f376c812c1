package store

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-sdbf/bloom"
)

const (
	DefaultBlobPrefix = "v1/sdbf/"

	TagSize      = "sdbf_size"
	TagElemCount = "sdbf_elem_count"
	TagHashCount = "sdbf_hash_count"
	TagFormat    = "sdbf_format"
)

type blobClient interface {
	Put(
		ctx context.Context,
		identity string,
		source io.ReadSeekCloser,
		opts ...azblob.Option,
	) (*azblob.WriteResponse, error)

	Reader(
		ctx context.Context,
		identity string,
		opts ...azblob.Option,
	) (*azblob.ReaderResponse, error)
}

// BlobStore keeps one blob per key in an azure blob container. Each blob is
// tagged with the filter geometry so filters can be selected by tag query
// without being read.
type BlobStore struct {
	log   logger.Logger
	store blobClient
	opts  Options
}

func NewBlobStore(log logger.Logger, store blobClient, opts ...Option) (*BlobStore, error) {
	o := newOptions(append([]Option{WithPrefix(DefaultBlobPrefix)}, opts...)...)
	if err := o.Format.check(); err != nil {
		return nil, err
	}
	return &BlobStore{log: log, store: store, opts: o}, nil
}

// BlobPath returns the blob name that holds key.
func (s *BlobStore) BlobPath(key string) string {
	return s.opts.Prefix + key + s.opts.Format.Ext()
}

// Tags returns the index tags written with f.
func (s *BlobStore) Tags(f *bloom.Filter) map[string]string {
	tags := map[string]string{}
	for k, v := range s.opts.Tags {
		tags[k] = v
	}
	tags[TagSize] = strconv.Itoa(f.Size())
	tags[TagElemCount] = strconv.FormatUint(f.ElemCount(), 10)
	tags[TagHashCount] = strconv.FormatUint(uint64(f.HashCount()), 10)
	tags[TagFormat] = s.opts.Format.String()
	return tags
}

func (s *BlobStore) Put(ctx context.Context, key string, f *bloom.Filter) (string, error) {
	key, err := resolveKey(key, f)
	if err != nil {
		return "", err
	}
	data, err := s.opts.Format.encode(f)
	if err != nil {
		return "", err
	}

	opts := []azblob.Option{azblob.WithTags(s.Tags(f))}
	if s.opts.FailIfExists {
		// Fail without modifying if any blob exists at the path.
		opts = append(opts, azblob.WithEtagNoneMatch("*"))
	}

	blobPath := s.BlobPath(key)
	if _, err = s.store.Put(ctx, blobPath, azblob.NewBytesReaderCloser(data), opts...); err != nil {
		if s.opts.FailIfExists && isAzureBlobExists(err) {
			return "", fmt.Errorf("%w: %s: %w", ErrExists, key, err)
		}
		return "", err
	}
	s.log.Debugf("put %s: %d bytes, %d elements", blobPath, f.Size(), f.ElemCount())
	return key, nil
}

func (s *BlobStore) Get(ctx context.Context, key string) (*bloom.Filter, error) {
	if err := CheckKey(key); err != nil {
		return nil, err
	}
	blobPath := s.BlobPath(key)

	rr, err := s.store.Reader(ctx, blobPath)
	if err != nil {
		if IsBlobNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, err
	}
	defer rr.Reader.Close()

	data, err := io.ReadAll(rr.Reader)
	if err != nil {
		return nil, err
	}
	return s.opts.Format.decode(data)
}
