package store

import (
	"fmt"

	"github.com/forestrie/go-sdbf/bloom"
)

// Format selects the record encoding written by a store.
type Format uint8

const (
	// FormatText is the two line hex text record.
	FormatText Format = iota
	// FormatBinary is the CBOR record, which also carries capacity hints and
	// the id.
	FormatBinary
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatBinary:
		return "cbor"
	}
	return fmt.Sprintf("format(%d)", uint8(f))
}

// Ext is the file or blob name suffix for records in this format.
func (f Format) Ext() string {
	if f == FormatBinary {
		return ".sdbfc"
	}
	return ".sdbf"
}

func (f Format) check() error {
	if f > FormatBinary {
		return fmt.Errorf("%w: %d", ErrFormat, uint8(f))
	}
	return nil
}

func (f Format) encode(filter *bloom.Filter) ([]byte, error) {
	switch f {
	case FormatText:
		return filter.MarshalText()
	case FormatBinary:
		return filter.MarshalBinary()
	}
	return nil, fmt.Errorf("%w: %d", ErrFormat, uint8(f))
}

func (f Format) decode(data []byte) (*bloom.Filter, error) {
	switch f {
	case FormatText:
		return bloom.Parse(string(data))
	case FormatBinary:
		return bloom.DecodeBinary(data)
	}
	return nil, fmt.Errorf("%w: %d", ErrFormat, uint8(f))
}
