package bsonuuid

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Representation selects the byte layout and the binary subtype used to store
// a UUID.
type Representation uint8

// List of supported representations.
const (
	// Unspecified denotes the absence of a representation. It is resolved
	// against the ambient representation at every encode or decode.
	Unspecified Representation = iota

	// Standard stores the UUID in network byte order, with subtype 4.
	Standard

	// CSharpLegacy is the layout of the legacy C# driver, which wrote the
	// bytes of a .NET Guid: the first three fields are little-endian.
	CSharpLegacy

	// JavaLegacy is the layout of the legacy Java driver, which wrote the
	// most and least significant halves as little-endian longs.
	JavaLegacy

	// PythonLegacy is the layout of the legacy Python driver, which wrote
	// the bytes in network order but with subtype 3.
	PythonLegacy
)

// Representations returns every representation except Unspecified.
func Representations() []Representation {
	return []Representation{Standard, CSharpLegacy, JavaLegacy, PythonLegacy}
}

// Subtype returns the binary subtype written under r.
// Unspecified has no subtype of its own.
func (r Representation) Subtype() (Subtype, bool) {
	switch r {
	case Unspecified:
		return 0, false
	case Standard:
		return SubtypeUUID, true
	case CSharpLegacy, JavaLegacy, PythonLegacy:
		return SubtypeUUIDLegacy, true
	}

	panic(fmt.Sprintf("unsupported representation %#v", r))
}

// IsLegacy reports whether r is one of the legacy driver layouts.
func (r Representation) IsLegacy() bool {
	switch r {
	case CSharpLegacy, JavaLegacy, PythonLegacy:
		return true
	}

	return false
}

// Valid reports whether r is one of the declared representations.
func (r Representation) Valid() bool {
	return r <= PythonLegacy
}

func (r Representation) String() string {
	switch r {
	case Unspecified:
		return "unspecified"
	case Standard:
		return "standard"
	case CSharpLegacy:
		return "csharpLegacy"
	case JavaLegacy:
		return "javaLegacy"
	case PythonLegacy:
		return "pythonLegacy"
	}

	return fmt.Sprintf("Representation(%d)", uint8(r))
}

// ParseRepresentation returns the representation named s.
// Matching ignores case, dashes and underscores, so "javaLegacy",
// "java_legacy" and "JAVA-LEGACY" are equivalent.
// An empty string parses as Unspecified.
func ParseRepresentation(s string) (Representation, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "", "_", "").Replace(norm)

	switch norm {
	case "", "unspecified":
		return Unspecified, nil
	case "standard":
		return Standard, nil
	case "csharplegacy":
		return CSharpLegacy, nil
	case "javalegacy":
		return JavaLegacy, nil
	case "pythonlegacy":
		return PythonLegacy, nil
	}

	return Unspecified, errors.Wrapf(ErrUnknownRepresentation, "%q", s)
}

func (r Representation) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, errors.Wrapf(ErrUnknownRepresentation, "%d", uint8(r))
	}

	return []byte(r.String()), nil
}

func (r *Representation) UnmarshalText(text []byte) error {
	v, err := ParseRepresentation(string(text))
	if err != nil {
		return err
	}

	*r = v
	return nil
}
