package bsonuuid

import (
	"encoding/binary"
	"fmt"

	"github.com/chaisql/bsonuuid/internal/encoding"
	"github.com/google/uuid"
)

// layout maps each wire byte to the index of the canonical byte it holds:
// wire[i] = canonical[layout[i]].
type layout [encoding.UUIDSize]int

var (
	networkLayout = layout{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

	// Guid.ToByteArray: Data1, Data2 and Data3 little-endian.
	csharpLegacyLayout = layout{3, 2, 1, 0, 5, 4, 7, 6, 8, 9, 10, 11, 12, 13, 14, 15}

	// Most and least significant longs, each little-endian.
	javaLegacyLayout = layout{7, 6, 5, 4, 3, 2, 1, 0, 15, 14, 13, 12, 11, 10, 9, 8}
)

func layoutOf(r Representation) *layout {
	switch r {
	case Standard, PythonLegacy:
		return &networkLayout
	case CSharpLegacy:
		return &csharpLegacyLayout
	case JavaLegacy:
		return &javaLegacyLayout
	}

	panic(fmt.Sprintf("no byte layout for representation %s", r))
}

// EncodeLayout returns the 16 bytes written for u under r.
// r must not be Unspecified.
func EncodeLayout(u uuid.UUID, r Representation) (b [encoding.UUIDSize]byte) {
	for dest, from := range layoutOf(r) {
		b[dest] = u[from]
	}

	return b
}

// DecodeLayout returns the UUID stored in b under r.
// r must not be Unspecified.
func DecodeLayout(b [encoding.UUIDSize]byte, r Representation) (u uuid.UUID) {
	for from, dest := range layoutOf(r) {
		u[dest] = b[from]
	}

	return u
}

// DecodeLayoutBytes is like DecodeLayout but takes a slice, which must be
// exactly 16 bytes long.
func DecodeLayoutBytes(b []byte, r Representation) (uuid.UUID, error) {
	if len(b) != encoding.UUIDSize {
		return uuid.Nil, &MalformedPayloadError{Length: len(b)}
	}

	return DecodeLayout([encoding.UUIDSize]byte(b), r), nil
}

// FromWords builds a UUID from its most and least significant 64 bits.
func FromWords(msb, lsb uint64) (u uuid.UUID) {
	binary.BigEndian.PutUint64(u[:8], msb)
	binary.BigEndian.PutUint64(u[8:], lsb)
	return u
}

// Words returns the most and least significant 64 bits of u.
func Words(u uuid.UUID) (msb, lsb uint64) {
	return binary.BigEndian.Uint64(u[:8]), binary.BigEndian.Uint64(u[8:])
}
