package seal

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-sdbf/bloom"
	"github.com/fxamacker/cbor/v2"
	"github.com/veraison/go-cose"
)

const (
	ContentType = "application/sdbf+cbor"
)

var (
	ErrPayload     = errors.New("seal: sealed payload invalid")
	ErrContentType = errors.New("seal: unexpected content type")
)

// FilterState is the signed payload. Record is the filter's binary record,
// so the seal commits to the buffer and every header field.
type FilterState struct {
	Issuer  string `cbor:"1,keyasint"`
	Subject string `cbor:"2,keyasint"`
	// Timestamp is the unix time (milliseconds) read when the filter was
	// sealed. Including it allows the same filter to be re-sealed.
	Timestamp int64  `cbor:"3,keyasint"`
	Record    []byte `cbor:"4,keyasint"`
}

// Sealer produces COSE Sign1 messages over filter records, binding a
// filter to the evidence it was computed from.
type Sealer struct {
	log       logger.Logger
	issuer    string
	cborCodec dtcbor.CBORCodec
}

func NewSealer(log logger.Logger, issuer string, cborCodec dtcbor.CBORCodec) Sealer {
	return Sealer{
		log:       log,
		issuer:    issuer,
		cborCodec: cborCodec,
	}
}

// NewSealerCodec returns the deterministic codec used for sealed payloads.
func NewSealerCodec() (dtcbor.CBORCodec, error) {
	codec, err := dtcbor.NewCBORCodec(
		dtcbor.NewDeterministicEncOpts(),
		dtcbor.NewDeterministicDecOpts(),
	)
	if err != nil {
		return dtcbor.CBORCodec{}, err
	}
	return codec, nil
}

// Sign1 seals f for subject, typically the name of the evidence item the
// filter digests. external is optional additional authenticated data and
// must be presented again to Open.
func (s Sealer) Sign1(coseSigner cose.Signer, keyIdentifier string, subject string, f *bloom.Filter, external []byte) ([]byte, error) {
	record, err := f.MarshalBinary()
	if err != nil {
		return nil, err
	}
	payload, err := s.cborCodec.MarshalCBOR(FilterState{
		Issuer:    s.issuer,
		Subject:   subject,
		Timestamp: time.Now().UnixMilli(),
		Record:    record,
	})
	if err != nil {
		return nil, err
	}

	msg := cose.Sign1Message{
		Headers: cose.Headers{
			Protected: cose.ProtectedHeader{
				cose.HeaderLabelAlgorithm:   coseSigner.Algorithm(),
				cose.HeaderLabelKeyID:       []byte(keyIdentifier),
				cose.HeaderLabelContentType: ContentType,
			},
		},
		Payload: payload,
	}
	if err = msg.Sign(rand.Reader, external, coseSigner); err != nil {
		return nil, err
	}
	s.log.Debugf("sealed %s: %d byte filter, %d elements", subject, f.Size(), f.ElemCount())
	return msg.MarshalCBOR()
}

// Sealed is a verified seal.
type Sealed struct {
	KeyIdentifier string
	State         FilterState
	Filter        *bloom.Filter
}

var payloadDecMode cbor.DecMode

func init() {
	var err error
	if payloadDecMode, err = (cbor.DecOptions{}).DecMode(); err != nil {
		panic(err)
	}
}

// Open verifies a message produced by Sign1 and reconstructs the filter.
// Nothing is decoded from the payload until the signature has verified.
func Open(verifier cose.Verifier, message []byte, external []byte) (*Sealed, error) {
	var msg cose.Sign1Message
	if err := msg.UnmarshalCBOR(message); err != nil {
		return nil, err
	}
	if err := msg.Verify(external, verifier); err != nil {
		return nil, err
	}

	if ct, ok := msg.Headers.Protected[cose.HeaderLabelContentType]; !ok || ct != ContentType {
		return nil, fmt.Errorf("%w: %v", ErrContentType, ct)
	}
	var kid string
	if b, ok := msg.Headers.Protected[cose.HeaderLabelKeyID].([]byte); ok {
		kid = string(b)
	}

	var state FilterState
	if err := payloadDecMode.Unmarshal(msg.Payload, &state); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPayload, err)
	}
	f, err := bloom.DecodeBinary(state.Record)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPayload, err)
	}
	return &Sealed{KeyIdentifier: kid, State: state, Filter: f}, nil
}
