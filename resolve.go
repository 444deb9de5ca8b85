package bsonuuid

import "github.com/cockroachdb/errors"

// Resolve returns the representation that governs a single encode or decode,
// given the connection-wide ambient representation and the representation of
// an explicit field-level codec. An absent explicit codec is passed as
// Unspecified.
//
// A specified explicit representation always wins, even when it disagrees
// with the ambient one. Otherwise the ambient representation applies. When
// both are Unspecified, Resolve fails with ErrUnresolvedRepresentation rather
// than falling back to Standard.
func Resolve(ambient, explicit Representation) (Representation, error) {
	if !explicit.Valid() {
		return Unspecified, errors.Wrapf(ErrUnknownRepresentation, "explicit representation %d", uint8(explicit))
	}
	if explicit != Unspecified {
		return explicit, nil
	}

	if !ambient.Valid() {
		return Unspecified, errors.Wrapf(ErrUnknownRepresentation, "ambient representation %d", uint8(ambient))
	}
	if ambient != Unspecified {
		return ambient, nil
	}

	return Unspecified, ErrUnresolvedRepresentation
}
