package encoding

import (
	"encoding/binary"
	"math"

	"github.com/cockroachdb/errors"
)

// ErrTruncated is returned when a binary element is shorter than its header
// or its declared length.
var ErrTruncated = errors.New("truncated binary element")

// EncodeBinary appends the body of a binary element to dst:
// the length of x as a little-endian int32, the subtype, then x itself.
func EncodeBinary(dst []byte, subtype byte, x []byte) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(x)))
	dst = append(dst, subtype)
	return append(dst, x...)
}

// DecodeBinary reads the body of a binary element from the beginning of b.
// It returns the subtype, the data and the number of bytes read.
// The returned data shares memory with b.
func DecodeBinary(b []byte) (byte, []byte, int, error) {
	if len(b) < binaryHeaderSize {
		return 0, nil, 0, errors.Wrapf(ErrTruncated, "expected at least %d bytes, got %d", binaryHeaderSize, len(b))
	}

	l := binary.LittleEndian.Uint32(b)
	if l > math.MaxInt32 {
		return 0, nil, 0, errors.Newf("invalid binary length %d", int32(l))
	}

	subtype := b[4]
	b = b[binaryHeaderSize:]
	if int(l) > len(b) {
		return 0, nil, 0, errors.Wrapf(ErrTruncated, "declared length %d, %d bytes available", l, len(b))
	}

	return subtype, b[:l:l], binaryHeaderSize + int(l), nil
}
