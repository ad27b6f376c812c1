package bloom

import (
	"errors"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// Payloads are raw LZ4 blocks: no frame header, no checksum, and the
// decompressed length comes from the record header.

// Compress returns the LZ4 block compressed buffer.
func (f *Filter) Compress() ([]byte, error) {
	return compressBlock(f.buf)
}

// UpdateCompressedSize compresses the buffer and records the compressed
// length in the field written to the text record header. Without it that
// field keeps whatever value it last held.
func (f *Filter) UpdateCompressedSize() ([]byte, error) {
	compressed, err := f.Compress()
	if err != nil {
		return nil, err
	}
	f.compSize = len(compressed)
	return compressed, nil
}

func compressBlock(src []byte) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(src)))
	n, err := lz4.CompressBlock(src, dst, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// CompressBlock reports incompressible input as zero length.
		return literalBlock(src), nil
	}
	return dst[:n], nil
}

// literalBlock encodes src as a single literals-only sequence.
func literalBlock(src []byte) []byte {
	n := len(src)
	out := make([]byte, 0, n+n/255+2)
	if n < 15 {
		return append(append(out, byte(n<<4)), src...)
	}
	out = append(out, 0xF0)
	for rest := n - 15; ; rest -= 255 {
		if rest < 255 {
			out = append(out, byte(rest))
			break
		}
		out = append(out, 255)
	}
	return append(out, src...)
}

// decompressBlock decodes src into a buffer of exactly size bytes. The
// buffer is allocated only after scanBlock has shown src decodes to size
// bytes.
func decompressBlock(src []byte, size int) ([]byte, error) {
	n, err := scanBlock(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompressionFailed, err)
	}
	if n != size {
		return nil, fmt.Errorf("%w: got %d, declared %d", ErrPayloadSize, n, size)
	}
	dst := make([]byte, size)
	if n, err = lz4.UncompressBlock(src, dst); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompressionFailed, err)
	}
	if n != size {
		return nil, fmt.Errorf("%w: got %d, declared %d", ErrPayloadSize, n, size)
	}
	return dst, nil
}

// scanBlock walks the sequences of an LZ4 block without producing output.
// It returns the decoded length of a structurally sound block, or why the
// block cannot be decoded.
func scanBlock(src []byte) (int, error) {
	var i, out int

	extend := func(n int) (int, error) {
		for {
			if i >= len(src) {
				return 0, ErrBlockTruncated
			}
			b := src[i]
			i++
			n += int(b)
			if b != 255 {
				return n, nil
			}
		}
	}

	for {
		if i >= len(src) {
			return 0, ErrBlockTruncated
		}
		token := src[i]
		i++

		lit := int(token >> 4)
		if lit == 15 {
			var err error
			if lit, err = extend(lit); err != nil {
				return 0, err
			}
		}
		if len(src)-i < lit {
			return 0, ErrBlockTruncated
		}
		i += lit
		out += lit

		// The last sequence carries literals only. A non zero match nibble
		// means an offset is still owed.
		if i == len(src) {
			if token&0x0F != 0 {
				return 0, ErrBlockTruncated
			}
			return out, nil
		}

		if len(src)-i < 2 {
			return 0, ErrBlockTruncated
		}
		offset := int(src[i]) | int(src[i+1])<<8
		i += 2
		if offset == 0 || offset > out {
			return 0, ErrBlockOffset
		}

		match := int(token & 0x0F)
		if match == 15 {
			var err error
			if match, err = extend(match); err != nil {
				return 0, err
			}
		}
		out += match + 4
	}
}

// IsTruncated reports whether err is a decompression failure caused by a
// truncated block.
func IsTruncated(err error) bool {
	return errors.Is(err, ErrDecompressionFailed) && errors.Is(err, ErrBlockTruncated)
}

// IsInvalidOffset reports whether err is a decompression failure caused by
// a bad back-reference.
func IsInvalidOffset(err error) bool {
	return errors.Is(err, ErrDecompressionFailed) && errors.Is(err, ErrBlockOffset)
}
