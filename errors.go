package bsonuuid

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrMalformedPayload is returned when a UUID binary value is not 16 bytes long.
	ErrMalformedPayload = errors.New("malformed uuid payload")

	// ErrSubtypeMismatch is returned when decoding a binary value whose subtype
	// is not the one written by the requested representation.
	ErrSubtypeMismatch = errors.New("uuid subtype does not match representation")

	// ErrUnsupportedSubtype is returned when asked to decode a binary value
	// that is neither subtype 3 nor subtype 4.
	ErrUnsupportedSubtype = errors.New("binary subtype is not a uuid subtype")

	// ErrUnresolvedRepresentation is returned when neither the ambient nor the
	// explicit representation is specified.
	ErrUnresolvedRepresentation = errors.New("uuid representation is unspecified")

	// ErrUnknownRepresentation is returned for representation names or values
	// that are not declared.
	ErrUnknownRepresentation = errors.New("unknown uuid representation")
)

// MalformedPayloadError is returned when the payload of a UUID binary value
// has the wrong length.
type MalformedPayloadError struct {
	Length int
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed uuid payload: expected 16 bytes, got %d", e.Length)
}

func (e *MalformedPayloadError) Unwrap() error {
	return ErrMalformedPayload
}

// SubtypeMismatchError is returned when a payload is decoded under a
// representation that writes a different subtype than the payload's.
type SubtypeMismatchError struct {
	Representation Representation
	Expected       Subtype
	Actual         Subtype
}

func (e *SubtypeMismatchError) Error() string {
	return fmt.Sprintf("cannot decode a subtype %s binary value with the %s uuid representation, which expects subtype %s",
		e.Actual, e.Representation, e.Expected)
}

func (e *SubtypeMismatchError) Unwrap() error {
	return ErrSubtypeMismatch
}

// UnsupportedSubtypeError is returned when a binary value does not carry
// one of the UUID subtypes.
type UnsupportedSubtypeError struct {
	Subtype Subtype
}

func (e *UnsupportedSubtypeError) Error() string {
	return fmt.Sprintf("unexpected binary subtype %s", e.Subtype)
}

func (e *UnsupportedSubtypeError) Unwrap() error {
	return ErrUnsupportedSubtype
}

// IsMalformedPayloadError reports whether err was caused by a payload of the wrong length.
func IsMalformedPayloadError(err error) bool {
	return errors.Is(err, ErrMalformedPayload)
}

// IsSubtypeMismatchError reports whether err was caused by decoding under the wrong representation.
func IsSubtypeMismatchError(err error) bool {
	return errors.Is(err, ErrSubtypeMismatch)
}

// IsConfigurationError reports whether err was caused by an unresolvable or
// unknown representation rather than by the data.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrUnresolvedRepresentation) || errors.Is(err, ErrUnknownRepresentation)
}
