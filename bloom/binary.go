package bloom

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// binaryRecord is the CBOR form of a filter. Unlike the text record it
// carries the capacity hints and the id.
type binaryRecord struct {
	Size       uint64  `cbor:"1,keyasint"`
	ElemCount  uint64  `cbor:"2,keyasint"`
	HashCount  uint16  `cbor:"3,keyasint"`
	BitMask    uint64  `cbor:"4,keyasint"`
	MaxElem    uint64  `cbor:"5,keyasint,omitempty"`
	MaxFP      float64 `cbor:"6,keyasint,omitempty"`
	Name       string  `cbor:"7,keyasint,omitempty"`
	ID         int32   `cbor:"8,keyasint,omitempty"`
	Compressed []byte  `cbor:"9,keyasint"`
}

var (
	binaryEncMode cbor.EncMode
	binaryDecMode cbor.DecMode
)

func init() {
	var err error
	if binaryEncMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic(err)
	}
	if binaryDecMode, err = (cbor.DecOptions{}).DecMode(); err != nil {
		panic(err)
	}
}

// MarshalBinary encodes f as a deterministic CBOR map with a compressed
// payload.
func (f *Filter) MarshalBinary() ([]byte, error) {
	compressed, err := f.Compress()
	if err != nil {
		return nil, err
	}
	return binaryEncMode.Marshal(binaryRecord{
		Size:       uint64(len(f.buf)),
		ElemCount:  f.elemCount,
		HashCount:  f.k,
		BitMask:    f.bitMask,
		MaxElem:    f.maxElem,
		MaxFP:      f.maxFP,
		Name:       f.name,
		ID:         f.id,
		Compressed: compressed,
	})
}

// UnmarshalBinary replaces f with the filter encoded by MarshalBinary. On
// error f is unchanged.
func (f *Filter) UnmarshalBinary(data []byte) error {
	var rec binaryRecord
	if err := binaryDecMode.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	restored, err := restore(recordHeader{
		Size:      rec.Size,
		ElemCount: rec.ElemCount,
		HashCount: rec.HashCount,
		BitMask:   rec.BitMask,
		CompSize:  uint64(len(rec.Compressed)),
		Name:      rec.Name,
	}, rec.Compressed)
	if err != nil {
		return err
	}
	restored.maxElem = rec.MaxElem
	restored.maxFP = rec.MaxFP
	restored.id = rec.ID
	*f = *restored
	return nil
}

// DecodeBinary is the constructor form of UnmarshalBinary.
func DecodeBinary(data []byte) (*Filter, error) {
	f := &Filter{}
	if err := f.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return f, nil
}
