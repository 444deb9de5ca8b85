package testutil

import (
	"encoding"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// RequireTextEqual compares the text form of two values and prints a
// diff if they differ.
func RequireTextEqual(t testing.TB, want, got encoding.TextMarshaler) {
	t.Helper()

	tWant, err := want.MarshalText()
	require.NoError(t, err)
	tGot, err := got.MarshalText()
	require.NoError(t, err)

	if diff := cmp.Diff(string(tWant), string(tGot)); diff != "" {
		require.Failf(t, "mismatched values, (-want, +got)", "%s", diff)
	}
}

func RequireJSONEq(t testing.TB, o any, expected string) {
	t.Helper()

	data, err := json.Marshal(o)
	NoError(t, err)
	require.JSONEq(t, expected, string(data))
}
