// Package matrix exercises the UUID codec over every combination of ambient
// representation, explicit representation and identifier, and checks that
// each combination behaves the way drivers interoperate in practice,
// including the ways in which they fail to.
package matrix

import (
	"context"
	"fmt"

	"github.com/chaisql/bsonuuid"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// All returns every representation, Unspecified first.
func All() []bsonuuid.Representation {
	return append([]bsonuuid.Representation{bsonuuid.Unspecified}, bsonuuid.Representations()...)
}

// A Case is one cell of the matrix: a value written through an explicit
// codec on a connection using the ambient representation.
type Case struct {
	Ambient  bsonuuid.Representation
	Explicit bsonuuid.Representation
	UUID     uuid.UUID
}

func (c Case) String() string {
	return fmt.Sprintf("ambient=%s/explicit=%s/%s", c.Ambient, c.Explicit, c.UUID)
}

// Cases returns the cross product of every ambient representation, every
// explicit representation and ids. Without ids, Fixture is used.
func Cases(ids ...uuid.UUID) []Case {
	if len(ids) == 0 {
		ids = []uuid.UUID{Fixture}
	}

	all := All()
	cases := make([]Case, 0, len(all)*len(all)*len(ids))
	for _, a := range all {
		for _, e := range all {
			for _, id := range ids {
				cases = append(cases, Case{Ambient: a, Explicit: e, UUID: id})
			}
		}
	}

	return cases
}

// Result holds what happened to a Case.
type Result struct {
	Case

	// Effective is the representation the write resolved to.
	Effective bsonuuid.Representation
	// Written is the binary value produced by the explicit codec.
	Written bsonuuid.Binary
	// Err is the error of the write.
	Err error

	// RoundTrip is Written read back through the explicit codec.
	RoundTrip    uuid.UUID
	RoundTripErr error

	// AmbientRead is Written read back by a reader that only knows the
	// ambient representation.
	AmbientRead    uuid.UUID
	AmbientReadErr error

	// RetaggedErr is the error of reading Written through the explicit codec
	// after swapping its subtype for the other UUID subtype.
	RetaggedErr error

	// Reinterpreted holds the bytes of Written decoded under every
	// representation, ignoring the subtype.
	Reinterpreted map[bsonuuid.Representation]uuid.UUID
}

// Evaluate runs c.
func Evaluate(c Case) Result {
	res := Result{Case: c}

	res.Effective, res.Err = bsonuuid.Resolve(c.Ambient, c.Explicit)
	if res.Err != nil {
		return res
	}

	explicit := bsonuuid.NewCodec(c.Explicit)
	res.Written, res.Err = explicit.Encode(c.Ambient, c.UUID)
	if res.Err != nil {
		return res
	}

	res.RoundTrip, res.RoundTripErr = explicit.Decode(c.Ambient, res.Written)
	res.AmbientRead, res.AmbientReadErr = bsonuuid.NewCodec(bsonuuid.Unspecified).Decode(c.Ambient, res.Written)
	_, res.RetaggedErr = explicit.Decode(c.Ambient, retag(res.Written))

	res.Reinterpreted = make(map[bsonuuid.Representation]uuid.UUID)
	for _, r := range bsonuuid.Representations() {
		u, err := bsonuuid.DecodeLayoutBytes(res.Written.Data, r)
		if err != nil {
			// Written is produced by the codec and always has 16 bytes.
			panic(err)
		}
		res.Reinterpreted[r] = u
	}

	return res
}

// retag returns b with the other UUID subtype.
func retag(b bsonuuid.Binary) bsonuuid.Binary {
	if b.Subtype == bsonuuid.SubtypeUUID {
		b.Subtype = bsonuuid.SubtypeUUIDLegacy
	} else {
		b.Subtype = bsonuuid.SubtypeUUID
	}

	return b
}

// Check returns an error describing every property r violates.
func (r Result) Check() error {
	if r.Ambient == bsonuuid.Unspecified && r.Explicit == bsonuuid.Unspecified {
		if !errors.Is(r.Err, bsonuuid.ErrUnresolvedRepresentation) {
			return errors.Newf("%s: expected an unresolved representation error, got %v", r.Case, r.Err)
		}
		return nil
	}

	if r.Err != nil {
		return errors.Wrapf(r.Err, "%s: write", r.Case)
	}

	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, errors.Newf("%s: "+format, append([]any{r.Case}, args...)...))
	}

	want := r.Explicit
	if want == bsonuuid.Unspecified {
		want = r.Ambient
	}
	if r.Effective != want {
		fail("resolved to %s, expected %s", r.Effective, want)
	}

	st, _ := r.Effective.Subtype()
	if r.Written.Subtype != st {
		fail("written with subtype %s, expected %s", r.Written.Subtype, st)
	}
	if len(r.Written.Data) != 16 {
		fail("written %d bytes", len(r.Written.Data))
	}

	if r.RoundTripErr != nil {
		fail("round trip: %v", r.RoundTripErr)
	} else if r.RoundTrip != r.UUID {
		fail("round trip returned %s", r.RoundTrip)
	}

	if !errors.Is(r.RetaggedErr, bsonuuid.ErrSubtypeMismatch) {
		fail("retagged read: expected a subtype mismatch, got %v", r.RetaggedErr)
	}

	if u := r.Reinterpreted[r.Effective]; u != r.UUID {
		fail("bytes read as %s returned %s", r.Effective, u)
	}

	ambientSt, _ := r.Ambient.Subtype()
	switch {
	case r.Ambient == bsonuuid.Unspecified:
		// An ambient-only reader cannot resolve anything.
		if !errors.Is(r.AmbientReadErr, bsonuuid.ErrUnresolvedRepresentation) {
			fail("ambient read: expected an unresolved representation error, got %v", r.AmbientReadErr)
		}
	case ambientSt != st:
		var mismatch *bsonuuid.SubtypeMismatchError
		if !errors.As(r.AmbientReadErr, &mismatch) {
			fail("ambient read: expected a subtype mismatch, got %v", r.AmbientReadErr)
		} else if mismatch.Actual != st || mismatch.Representation != r.Ambient {
			fail("ambient read: unexpected mismatch %v", mismatch)
		}
	default:
		if r.AmbientReadErr != nil {
			fail("ambient read: %v", r.AmbientReadErr)
		} else if r.AmbientRead != r.Reinterpreted[r.Ambient] {
			fail("ambient read returned %s, raw bytes read as %s return %s", r.AmbientRead, r.Ambient, r.Reinterpreted[r.Ambient])
		}
		if r.Ambient == r.Effective && r.AmbientRead != r.UUID {
			fail("ambient read returned %s under the written representation", r.AmbientRead)
		}
	}

	return errors.Join(errs...)
}

// Run evaluates cases concurrently, using at most workers goroutines, or
// one per case if workers <= 0. Results are in the order of cases.
// It only fails if ctx is canceled.
func Run(ctx context.Context, cases []Case, workers int) ([]Result, error) {
	results := make([]Result, len(cases))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i := range cases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = Evaluate(cases[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Verify checks every result and combines the errors.
func Verify(results []Result) error {
	var errs []error
	for _, r := range results {
		if err := r.Check(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
