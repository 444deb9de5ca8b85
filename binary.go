package bsonuuid

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"strconv"

	"github.com/buger/jsonparser"
	"github.com/chaisql/bsonuuid/internal/encoding"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// Binary is the content of a binary value slot: a subtype and its payload.
type Binary struct {
	Subtype Subtype
	Data    []byte
}

// NewBinaryFromUUID encodes u under r.
// It fails if r is Unspecified.
func NewBinaryFromUUID(u uuid.UUID, r Representation) (Binary, error) {
	return NewCodec(r).Encode(Unspecified, u)
}

// UUID decodes b under r.
// It fails if r is Unspecified.
func (b Binary) UUID(r Representation) (uuid.UUID, error) {
	return NewCodec(r).Decode(Unspecified, b)
}

// Equal reports whether b and other have the same subtype and payload.
func (b Binary) Equal(other Binary) bool {
	return b.Subtype == other.Subtype && bytes.Equal(b.Data, other.Data)
}

func (b Binary) String() string {
	t, _ := b.MarshalText()
	return string(t)
}

// MarshalText returns the subtype and the payload in hexadecimal, separated
// by a colon: "04:00112233445566778899aabbccddeeff".
func (b Binary) MarshalText() ([]byte, error) {
	dst := make([]byte, 0, 3+hex.EncodedLen(len(b.Data)))
	dst = hex.AppendEncode(dst, []byte{byte(b.Subtype)})
	dst = append(dst, ':')
	return hex.AppendEncode(dst, b.Data), nil
}

func (b *Binary) UnmarshalText(text []byte) error {
	st, data, ok := bytes.Cut(text, []byte{':'})
	if !ok {
		return errors.Newf("invalid binary text %q: missing subtype separator", text)
	}

	subtype, err := parseSubtype(string(st))
	if err != nil {
		return err
	}

	x := make([]byte, hex.DecodedLen(len(data)))
	if _, err := hex.Decode(x, data); err != nil {
		return errors.Wrap(err, "invalid binary payload")
	}

	b.Subtype = subtype
	b.Data = x
	return nil
}

// MarshalBinary returns the body of the binary element holding b.
func (b Binary) MarshalBinary() ([]byte, error) {
	return encoding.EncodeBinary(nil, byte(b.Subtype), b.Data), nil
}

// UnmarshalBinary decodes the body of a binary element. The element must
// span the whole input.
func (b *Binary) UnmarshalBinary(data []byte) error {
	st, x, n, err := encoding.DecodeBinary(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return errors.Newf("%d trailing bytes after binary element", len(data)-n)
	}

	b.Subtype = Subtype(st)
	b.Data = bytes.Clone(x)
	return nil
}

// MarshalJSON returns the canonical Extended JSON form of b:
//
//	{"$binary":{"base64":"ABEiM0RVZneImaq7zN3u/w==","subType":"04"}}
func (b Binary) MarshalJSON() ([]byte, error) {
	var dst bytes.Buffer
	dst.WriteString(`{"$binary":{"base64":"`)
	dst.WriteString(base64.StdEncoding.EncodeToString(b.Data))
	dst.WriteString(`","subType":"`)
	dst.WriteString(hex.EncodeToString([]byte{byte(b.Subtype)}))
	dst.WriteString(`"}}`)
	return dst.Bytes(), nil
}

// UnmarshalJSON accepts the canonical and the legacy Extended JSON forms of a
// binary value, as well as {"$uuid":"..."}, which is a standard UUID.
func (b *Binary) UnmarshalJSON(data []byte) error {
	if s, err := jsonparser.GetString(data, "$uuid"); err == nil {
		u, err := uuid.Parse(s)
		if err != nil {
			return errors.Wrap(err, "invalid $uuid")
		}

		*b, err = NewBinaryFromUUID(u, Standard)
		return err
	}

	v, tp, _, err := jsonparser.Get(data, "$binary")
	if err != nil {
		return errors.Wrap(err, "missing $binary")
	}

	var payload, st string
	switch tp {
	case jsonparser.Object:
		if payload, err = jsonparser.GetString(v, "base64"); err != nil {
			return errors.Wrap(err, "missing $binary.base64")
		}
		if st, err = jsonparser.GetString(v, "subType"); err != nil {
			return errors.Wrap(err, "missing $binary.subType")
		}
	case jsonparser.String:
		if payload, err = jsonparser.ParseString(v); err != nil {
			return errors.Wrap(err, "invalid $binary")
		}
		if st, err = jsonparser.GetString(data, "$type"); err != nil {
			return errors.Wrap(err, "missing $type")
		}
	default:
		return errors.Newf("unexpected $binary of type %v", tp)
	}

	subtype, err := parseSubtype(st)
	if err != nil {
		return err
	}

	x, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return errors.Wrap(err, "invalid base64 payload")
	}

	b.Subtype = subtype
	b.Data = x
	return nil
}

func parseSubtype(s string) (Subtype, error) {
	n, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid binary subtype %q", s)
	}

	return Subtype(n), nil
}
