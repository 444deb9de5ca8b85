package uuidutil

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/chaisql/bsonuuid"
	"github.com/chaisql/bsonuuid/matrix"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// Target selects the codec applied to a value: the codec of Field in
// Registry, unless Explicit overrides it.
type Target struct {
	Registry *bsonuuid.Registry
	Field    string
	Explicit bsonuuid.Representation
}

func (t Target) encode(u uuid.UUID) (bsonuuid.Binary, error) {
	if t.Explicit != bsonuuid.Unspecified {
		return bsonuuid.NewCodec(t.Explicit).Encode(t.Registry.Ambient(), u)
	}

	return t.Registry.Encode(t.Field, u)
}

func (t Target) decode(b bsonuuid.Binary) (uuid.UUID, error) {
	if t.Explicit != bsonuuid.Unspecified {
		return bsonuuid.NewCodec(t.Explicit).Decode(t.Registry.Ambient(), b)
	}

	return t.Registry.Decode(t.Field, b)
}

// Encode writes the binary value of id in the format f.
func Encode(w io.Writer, t Target, id string, f Format) error {
	u, err := uuid.Parse(id)
	if err != nil {
		return errors.Wrapf(err, "invalid uuid %q", id)
	}

	b, err := t.encode(u)
	if err != nil {
		return err
	}

	out, err := FormatBinary(b, f)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, out)
	return err
}

// Decode parses a binary value in the format f and writes the UUID it holds.
func Decode(w io.Writer, t Target, input string, f Format) error {
	b, err := ParseBinary(input, f)
	if err != nil {
		return err
	}

	u, err := t.decode(b)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, u)
	return err
}

// Reinterpret parses a binary value in the format f and writes the UUID its
// payload holds under every representation, whatever its subtype.
func Reinterpret(w io.Writer, input string, f Format) error {
	b, err := ParseBinary(input, f)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REPRESENTATION\tUUID\tSUBTYPE")
	for _, r := range bsonuuid.Representations() {
		u, err := bsonuuid.DecodeLayoutBytes(b.Data, r)
		if err != nil {
			return err
		}

		match := "mismatch"
		if st, _ := r.Subtype(); st == b.Subtype {
			match = "match"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\n", r, u, match)
	}

	return tw.Flush()
}

// MatrixOptions configures Matrix.
type MatrixOptions struct {
	UUIDs   []string
	Workers int
}

// Matrix runs the compatibility matrix over the given UUIDs, writes the
// table of results and fails if any property is violated.
func Matrix(ctx context.Context, w io.Writer, opt MatrixOptions) error {
	ids := make([]uuid.UUID, 0, len(opt.UUIDs))
	for _, s := range opt.UUIDs {
		u, err := uuid.Parse(s)
		if err != nil {
			return errors.Wrapf(err, "invalid uuid %q", s)
		}
		ids = append(ids, u)
	}

	results, err := matrix.Run(ctx, matrix.Cases(ids...), opt.Workers)
	if err != nil {
		return err
	}

	if err := matrix.WriteTable(w, results); err != nil {
		return err
	}

	return matrix.Verify(results)
}
