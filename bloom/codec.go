package bloom

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// MarshalText renders the two line text record. The payload is always
// recompressed from the current buffer, but the compressed size field is
// written as last recorded by UpdateCompressedSize and may be stale.
func (f *Filter) MarshalText() ([]byte, error) {
	compressed, err := f.Compress()
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	sb.WriteString(f.header().String())
	sb.WriteByte('\n')
	sb.WriteString(hex.EncodeToString(compressed))
	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}

func (f *Filter) String() string {
	text, err := f.MarshalText()
	if err != nil {
		return f.header().String()
	}
	return string(text)
}

func (f *Filter) header() recordHeader {
	return recordHeader{
		Size:      uint64(len(f.buf)),
		ElemCount: f.elemCount,
		HashCount: f.k,
		BitMask:   f.bitMask,
		CompSize:  uint64(f.compSize),
		Name:      f.name,
	}
}

// UnmarshalText replaces f with the filter described by a text record. On
// error f is unchanged.
func (f *Filter) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = *parsed
	return nil
}

// Parse reconstructs a filter from a text record.
//
// The bit mask is re-derived from the declared size and the hamming weight
// is recomputed from the decompressed buffer; neither is taken on trust.
// Capacity hints are not part of the record and come back zero.
func Parse(s string) (*Filter, error) {
	headerLine, payload, ok := strings.Cut(s, "\n")
	if !ok {
		return nil, fmt.Errorf("%w: payload line", ErrMissingField)
	}
	payload, _, _ = strings.Cut(payload, "\n")

	h, err := decodeHeader(strings.TrimSuffix(headerLine, "\r"))
	if err != nil {
		return nil, err
	}
	compressed, err := hex.DecodeString(strings.TrimSuffix(payload, "\r"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	return restore(h, compressed)
}

// restore builds a filter from a decoded header and compressed payload.
func restore(h recordHeader, compressed []byte) (*Filter, error) {
	if err := CheckSize(h.Size); err != nil {
		return nil, fmt.Errorf("%w: declared %d bytes", err, h.Size)
	}
	buf, err := decompressBlock(compressed, int(h.Size))
	if err != nil {
		return nil, err
	}
	f := &Filter{
		buf:       buf,
		bitMask:   BitMaskFor(len(buf)),
		k:         h.HashCount,
		elemCount: h.ElemCount,
		compSize:  int(h.CompSize),
		name:      h.Name,
	}
	f.computeHamming()
	return f, nil
}
