package matrix_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/chaisql/bsonuuid"
	"github.com/chaisql/bsonuuid/internal/testutil"
	"github.com/chaisql/bsonuuid/matrix"
	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCases(t *testing.T) {
	cases := matrix.Cases()
	require.Len(t, cases, 25)

	ids := testutil.RandomUUIDs(3)
	cases = matrix.Cases(ids...)
	require.Len(t, cases, 75)

	seen := make(map[matrix.Case]bool)
	for _, c := range cases {
		require.False(t, seen[c], "duplicate case %s", c)
		seen[c] = true
	}
}

func TestMatrix(t *testing.T) {
	ids := append(testutil.EdgeUUIDs(), testutil.RandomUUIDs(100)...)

	results, err := matrix.Run(context.Background(), matrix.Cases(ids...), 8)
	require.NoError(t, err)
	require.Len(t, results, 25*len(ids))

	require.NoError(t, matrix.Verify(results))
}

func TestRunKeepsOrder(t *testing.T) {
	cases := matrix.Cases(testutil.RandomUUIDs(4)...)

	results, err := matrix.Run(context.Background(), cases, 0)
	require.NoError(t, err)

	got := make([]matrix.Case, len(results))
	for i, r := range results {
		got[i] = r.Case
	}

	if diff := cmp.Diff(cases, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := matrix.Run(ctx, matrix.Cases(), 2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFixtureWrites(t *testing.T) {
	for _, c := range matrix.Cases() {
		t.Run(c.String(), func(t *testing.T) {
			res := matrix.Evaluate(c)
			if c.Ambient == bsonuuid.Unspecified && c.Explicit == bsonuuid.Unspecified {
				require.ErrorIs(t, res.Err, bsonuuid.ErrUnresolvedRepresentation)
				return
			}
			require.NoError(t, res.Err)

			v, ok := matrix.VectorOf(res.Effective)
			require.True(t, ok)
			require.Equal(t, v.Binary, res.Written)
		})
	}
}

// Reading a value with the ambient representation only, the way a
// connection without the field codec would, either fails on the subtype or
// returns the documented wrong value.
func TestFixtureAmbientReads(t *testing.T) {
	for _, c := range matrix.Cases() {
		if c.Ambient == bsonuuid.Unspecified || c.Explicit == bsonuuid.Unspecified {
			continue
		}

		t.Run(c.String(), func(t *testing.T) {
			res := matrix.Evaluate(c)
			require.NoError(t, res.Err)

			est, _ := c.Explicit.Subtype()
			ast, _ := c.Ambient.Subtype()

			switch {
			case c.Ambient == c.Explicit:
				require.NoError(t, res.AmbientReadErr)
				require.Equal(t, matrix.Fixture, res.AmbientRead)
			case est != ast:
				require.ErrorIs(t, res.AmbientReadErr, bsonuuid.ErrSubtypeMismatch)
			default:
				require.NoError(t, res.AmbientReadErr)
				require.Equal(t, misread(t, c.Explicit, c.Ambient), res.AmbientRead)
				require.NotEqual(t, matrix.Fixture, res.AmbientRead)
			}
		})
	}
}

func TestFixtureReinterpretations(t *testing.T) {
	for _, written := range bsonuuid.Representations() {
		res := matrix.Evaluate(matrix.Case{Ambient: bsonuuid.Unspecified, Explicit: written, UUID: matrix.Fixture})
		require.NoError(t, res.Check())

		for _, read := range bsonuuid.Representations() {
			t.Run(fmt.Sprintf("%s/%s", written, read), func(t *testing.T) {
				want := matrix.Fixture
				if read != written {
					want = misread(t, written, read)
				}
				require.Equal(t, want, res.Reinterpreted[read])
			})
		}
	}
}

// The legacy Java layout read as standard, ignoring the subtype.
func TestJavaLegacyWrittenStandardRead(t *testing.T) {
	res := matrix.Evaluate(matrix.Case{
		Ambient:  bsonuuid.Standard,
		Explicit: bsonuuid.JavaLegacy,
		UUID:     matrix.Fixture,
	})
	require.NoError(t, res.Check())

	require.Equal(t, uuid.MustParse("77665544-3322-1100-ffee-ddccbbaa9988"), res.Reinterpreted[bsonuuid.Standard])

	var mismatch *bsonuuid.SubtypeMismatchError
	require.True(t, errors.As(res.AmbientReadErr, &mismatch))
	require.Equal(t, bsonuuid.Standard, mismatch.Representation)
	require.Equal(t, bsonuuid.SubtypeUUIDLegacy, mismatch.Actual)
}

func TestCheckReportsViolations(t *testing.T) {
	good := matrix.Evaluate(matrix.Case{Ambient: bsonuuid.Standard, Explicit: bsonuuid.CSharpLegacy, UUID: matrix.Fixture})
	require.NoError(t, good.Check())

	tests := []struct {
		name   string
		mutate func(r *matrix.Result)
	}{
		{"wrong effective", func(r *matrix.Result) { r.Effective = bsonuuid.Standard }},
		{"wrong subtype", func(r *matrix.Result) { r.Written.Subtype = bsonuuid.SubtypeUUID }},
		{"short payload", func(r *matrix.Result) { r.Written.Data = r.Written.Data[:15] }},
		{"round trip", func(r *matrix.Result) { r.RoundTrip = uuid.Nil }},
		{"round trip error", func(r *matrix.Result) { r.RoundTripErr = errors.New("boom") }},
		{"silent ambient read", func(r *matrix.Result) { r.AmbientReadErr = nil }},
		{"retagged read accepted", func(r *matrix.Result) { r.RetaggedErr = nil }},
		{"write error", func(r *matrix.Result) { r.Err = errors.New("boom") }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := good
			r.Written.Data = append([]byte(nil), good.Written.Data...)
			test.mutate(&r)
			require.Error(t, r.Check())
		})
	}

	unresolved := matrix.Evaluate(matrix.Case{UUID: matrix.Fixture})
	require.NoError(t, unresolved.Check())

	unresolved.Err = nil
	require.Error(t, unresolved.Check())
}

func misread(t *testing.T, written, read bsonuuid.Representation) uuid.UUID {
	t.Helper()

	for _, m := range matrix.Misreads {
		if m.Written == written && m.Read == read {
			return m.Value
		}
	}

	t.Fatalf("no misread for %s read as %s", written, read)
	return uuid.Nil
}
