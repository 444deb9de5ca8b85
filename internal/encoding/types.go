package encoding

// Binary subtypes, as written in the byte that follows the length prefix of
// a binary element.
// The UUID codec only produces and consumes UUIDOldSubtype and UUIDSubtype,
// the others are listed so that error messages can name them.
const (
	GenericSubtype  byte = 0x00
	FunctionSubtype byte = 0x01

	// Deprecated binary layout carrying its own inner length.
	BinaryOldSubtype byte = 0x02

	// UUIDs written by legacy drivers, in a driver specific byte order.
	UUIDOldSubtype byte = 0x03

	// UUIDs in network byte order.
	UUIDSubtype byte = 0x04

	MD5Subtype       byte = 0x05
	EncryptedSubtype byte = 0x06
	ColumnSubtype    byte = 0x07
	SensitiveSubtype byte = 0x08
	VectorSubtype    byte = 0x09

	// 0x80 to 0xFF are user defined.
	UserDefinedSubtype byte = 0x80
)

// UUIDSize is the length of the payload of both UUID subtypes.
const UUIDSize = 16

// binaryHeaderSize is the length prefix followed by the subtype byte.
const binaryHeaderSize = 5

// SubtypeName returns a short human readable name for a binary subtype.
func SubtypeName(st byte) string {
	switch st {
	case GenericSubtype:
		return "generic"
	case FunctionSubtype:
		return "function"
	case BinaryOldSubtype:
		return "binary (old)"
	case UUIDOldSubtype:
		return "uuid (legacy)"
	case UUIDSubtype:
		return "uuid"
	case MD5Subtype:
		return "md5"
	case EncryptedSubtype:
		return "encrypted"
	case ColumnSubtype:
		return "column"
	case SensitiveSubtype:
		return "sensitive"
	case VectorSubtype:
		return "vector"
	}

	if st >= UserDefinedSubtype {
		return "user defined"
	}

	return "unknown"
}
