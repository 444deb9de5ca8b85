package bsonuuid

import (
	"fmt"

	"github.com/chaisql/bsonuuid/internal/encoding"
)

// Subtype is the one byte discriminator of a binary value.
type Subtype byte

// UUID subtypes.
const (
	// SubtypeUUIDLegacy tags UUIDs written in one of the legacy layouts.
	SubtypeUUIDLegacy Subtype = Subtype(encoding.UUIDOldSubtype)

	// SubtypeUUID tags UUIDs written in network byte order.
	SubtypeUUID Subtype = Subtype(encoding.UUIDSubtype)
)

// IsUUID reports whether st is one of the two UUID subtypes.
func (st Subtype) IsUUID() bool {
	return st == SubtypeUUIDLegacy || st == SubtypeUUID
}

func (st Subtype) String() string {
	return fmt.Sprintf("%d (%s)", byte(st), encoding.SubtypeName(byte(st)))
}
