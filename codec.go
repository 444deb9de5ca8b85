package bsonuuid

import (
	"github.com/chaisql/bsonuuid/internal/encoding"
	"github.com/google/uuid"
)

// A Codec encodes and decodes UUIDs under the representation it was built
// with. A Codec built with Unspecified defers to the ambient representation
// passed to each call.
// Codecs are immutable and safe for concurrent use.
type Codec struct {
	representation Representation
}

// NewCodec returns a codec bound to r.
func NewCodec(r Representation) Codec {
	return Codec{representation: r}
}

// Representation returns the representation the codec was built with,
// which may be Unspecified.
func (c Codec) Representation() Representation {
	return c.representation
}

// Encode returns the binary value written for u. The representation is
// resolved from the ambient representation and the codec's own.
func (c Codec) Encode(ambient Representation, u uuid.UUID) (Binary, error) {
	r, err := Resolve(ambient, c.representation)
	if err != nil {
		return Binary{}, err
	}

	st, _ := r.Subtype()
	data := EncodeLayout(u, r)
	return Binary{Subtype: st, Data: data[:]}, nil
}

// Decode returns the UUID stored in b. The representation is resolved from
// the ambient representation and the codec's own, and b must carry the
// subtype that representation writes.
func (c Codec) Decode(ambient Representation, b Binary) (uuid.UUID, error) {
	r, err := Resolve(ambient, c.representation)
	if err != nil {
		return uuid.Nil, err
	}

	if !b.Subtype.IsUUID() {
		return uuid.Nil, &UnsupportedSubtypeError{Subtype: b.Subtype}
	}

	if len(b.Data) != encoding.UUIDSize {
		return uuid.Nil, &MalformedPayloadError{Length: len(b.Data)}
	}

	if want, _ := r.Subtype(); want != b.Subtype {
		return uuid.Nil, &SubtypeMismatchError{
			Representation: r,
			Expected:       want,
			Actual:         b.Subtype,
		}
	}

	return DecodeLayout([encoding.UUIDSize]byte(b.Data), r), nil
}
