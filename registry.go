package bsonuuid

import (
	"maps"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// A Registry layers field-level codecs over a connection-wide ambient
// representation. Fields without a codec of their own use the ambient
// representation. A Registry is immutable once built.
type Registry struct {
	ambient Representation
	fields  map[string]Codec
}

// NewRegistry returns a registry using ambient for every field that has no
// codec in fields. The map is copied.
//
// It fails if the ambient representation is Unspecified while one of the
// field codecs is Unspecified too, since that field could never be encoded.
// Fields without a codec are checked at each call instead, so that a
// registry may use an Unspecified ambient representation as long as every
// UUID field it handles has an explicit codec.
func NewRegistry(ambient Representation, fields map[string]Codec) (*Registry, error) {
	if !ambient.Valid() {
		return nil, errors.Wrapf(ErrUnknownRepresentation, "ambient representation %d", uint8(ambient))
	}

	r := Registry{
		ambient: ambient,
		fields:  maps.Clone(fields),
	}

	for _, name := range slices.Sorted(maps.Keys(r.fields)) {
		c := r.fields[name]

		eff, err := Resolve(ambient, c.Representation())
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", name)
		}

		if ambient != Unspecified && eff != ambient {
			Logger().Debug("explicit uuid representation overrides ambient",
				zap.String("field", name),
				zap.Stringer("ambient", ambient),
				zap.Stringer("explicit", eff),
			)
		}
	}

	return &r, nil
}

// Ambient returns the connection-wide representation.
func (r *Registry) Ambient() Representation {
	return r.ambient
}

// Codec returns the codec registered for field, or an Unspecified codec
// deferring to the ambient representation. The boolean reports whether the
// field has a codec of its own.
func (r *Registry) Codec(field string) (Codec, bool) {
	c, ok := r.fields[field]
	return c, ok
}

// Representation returns the representation that applies to field.
func (r *Registry) Representation(field string) (Representation, error) {
	c, _ := r.Codec(field)
	return Resolve(r.ambient, c.Representation())
}

// Encode encodes the value of field.
func (r *Registry) Encode(field string, u uuid.UUID) (Binary, error) {
	c, _ := r.Codec(field)
	b, err := c.Encode(r.ambient, u)
	if err != nil {
		return Binary{}, errors.Wrapf(err, "field %q", field)
	}

	return b, nil
}

// Decode decodes the value of field.
func (r *Registry) Decode(field string, b Binary) (uuid.UUID, error) {
	c, _ := r.Codec(field)
	u, err := c.Decode(r.ambient, b)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "field %q", field)
	}

	return u, nil
}
