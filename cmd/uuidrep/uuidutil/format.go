package uuidutil

import (
	"encoding/hex"
	"strings"

	"github.com/chaisql/bsonuuid"
	"github.com/cockroachdb/errors"
)

// Format is the textual form of a binary value on the command line.
type Format string

// Supported formats.
const (
	// FormatText is the subtype and the payload in hexadecimal: "04:0011...".
	FormatText Format = "text"
	// FormatJSON is Extended JSON.
	FormatJSON Format = "json"
	// FormatElement is the whole binary element body in hexadecimal,
	// length prefix and subtype included.
	FormatElement Format = "element"
)

// ParseFormat returns the format named s. An empty string is FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatElement:
		return f, nil
	}

	return "", errors.Newf("unknown format %q, expected one of text, json, element", s)
}

// FormatBinary renders b in the format f.
func FormatBinary(b bsonuuid.Binary, f Format) (string, error) {
	var (
		out []byte
		err error
	)

	switch f {
	case FormatText:
		out, err = b.MarshalText()
	case FormatJSON:
		out, err = b.MarshalJSON()
	case FormatElement:
		out, err = b.MarshalBinary()
		out = []byte(hex.EncodeToString(out))
	default:
		return "", errors.Newf("unknown format %q", f)
	}

	return string(out), err
}

// ParseBinary parses s in the format f.
func ParseBinary(s string, f Format) (bsonuuid.Binary, error) {
	var b bsonuuid.Binary
	s = strings.TrimSpace(s)

	var err error
	switch f {
	case FormatText:
		err = b.UnmarshalText([]byte(s))
	case FormatJSON:
		err = b.UnmarshalJSON([]byte(s))
	case FormatElement:
		var raw []byte
		raw, err = hex.DecodeString(s)
		if err != nil {
			return b, errors.Wrap(err, "invalid element")
		}
		err = b.UnmarshalBinary(raw)
	default:
		err = errors.Newf("unknown format %q", f)
	}

	if err != nil {
		return bsonuuid.Binary{}, err
	}

	return b, nil
}
