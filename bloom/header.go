package bloom

import (
	"fmt"
	"strconv"
	"strings"
)

// headerFields is the number of ':' separated fields following the magic.
const headerFields = 6

// recordHeader is the first line of a text record:
//
//	sdbf-idx:<size>:<elem_count>:<hash_count>:<bit_mask hex>:<compressed_size>:<name>
type recordHeader struct {
	Size      uint64
	ElemCount uint64
	HashCount uint16
	BitMask   uint64
	CompSize  uint64
	Name      string
}

func (h recordHeader) String() string {
	return fmt.Sprintf("%s:%d:%d:%d:%02x:%d:%s",
		MagicIdx, h.Size, h.ElemCount, h.HashCount, h.BitMask, h.CompSize, h.Name)
}

// decodeHeader parses a header line. The leading token is discarded and the
// name is the remainder of the line, so it may itself contain ':'.
func decodeHeader(line string) (h recordHeader, err error) {
	parts := strings.SplitN(line, ":", headerFields+1)
	if len(parts) < headerFields+1 {
		return recordHeader{}, fmt.Errorf("%w: header has %d of %d fields",
			ErrMissingField, max(len(parts)-1, 0), headerFields)
	}
	fields := parts[1:]

	if h.Size, err = parseUint("size", fields[0], 10, 64); err != nil {
		return recordHeader{}, err
	}
	if h.ElemCount, err = parseUint("elem_count", fields[1], 10, 64); err != nil {
		return recordHeader{}, err
	}
	k, err := parseUint("hash_count", fields[2], 10, 16)
	if err != nil {
		return recordHeader{}, err
	}
	h.HashCount = uint16(k)
	if h.BitMask, err = parseUint("bit_mask", fields[3], 16, 64); err != nil {
		return recordHeader{}, err
	}
	if h.CompSize, err = parseUint("compressed_size", fields[4], 10, 64); err != nil {
		return recordHeader{}, err
	}
	h.Name = fields[5]
	return h, nil
}

func parseUint(field, s string, base, bitSize int) (uint64, error) {
	v, err := strconv.ParseUint(s, base, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidInteger, field, err)
	}
	return v, nil
}
