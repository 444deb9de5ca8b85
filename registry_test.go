package bsonuuid_test

import (
	"testing"

	"github.com/chaisql/bsonuuid"
	"github.com/chaisql/bsonuuid/internal/testutil"
	"github.com/chaisql/bsonuuid/matrix"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRegistry(t *testing.T) {
	fields := map[string]bsonuuid.Codec{
		"legacy_id": bsonuuid.NewCodec(bsonuuid.CSharpLegacy),
		"java_id":   bsonuuid.NewCodec(bsonuuid.JavaLegacy),
		"deferred":  bsonuuid.NewCodec(bsonuuid.Unspecified),
	}

	reg, err := bsonuuid.NewRegistry(bsonuuid.Standard, fields)
	testutil.NoError(t, err)
	require.Equal(t, bsonuuid.Standard, reg.Ambient())

	// the registry owns a copy of the map
	fields["legacy_id"] = bsonuuid.NewCodec(bsonuuid.PythonLegacy)

	tests := []struct {
		field string
		want  bsonuuid.Representation
		own   bool
	}{
		{"legacy_id", bsonuuid.CSharpLegacy, true},
		{"java_id", bsonuuid.JavaLegacy, true},
		{"deferred", bsonuuid.Standard, true},
		{"_id", bsonuuid.Standard, false},
	}

	for _, test := range tests {
		t.Run(test.field, func(t *testing.T) {
			_, own := reg.Codec(test.field)
			require.Equal(t, test.own, own)

			r, err := reg.Representation(test.field)
			require.NoError(t, err)
			require.Equal(t, test.want, r)

			b, err := reg.Encode(test.field, matrix.Fixture)
			require.NoError(t, err)

			v, _ := matrix.VectorOf(test.want)
			require.Equal(t, v.Binary, b)

			u, err := reg.Decode(test.field, b)
			require.NoError(t, err)
			require.Equal(t, matrix.Fixture, u)
		})
	}
}

func TestRegistryDecodeErrorsNameTheField(t *testing.T) {
	reg, err := bsonuuid.NewRegistry(bsonuuid.Standard, map[string]bsonuuid.Codec{
		"legacy_id": bsonuuid.NewCodec(bsonuuid.JavaLegacy),
	})
	require.NoError(t, err)

	v, _ := matrix.VectorOf(bsonuuid.Standard)
	_, err = reg.Decode("legacy_id", v.Binary)
	testutil.ErrorIs(t, err, bsonuuid.ErrSubtypeMismatch)
	require.Contains(t, err.Error(), `field "legacy_id"`)

	var mismatch *bsonuuid.SubtypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, bsonuuid.JavaLegacy, mismatch.Representation)

	_, err = reg.Decode("_id", bsonuuid.Binary{Subtype: bsonuuid.SubtypeUUID, Data: v.Binary.Data[:15]})
	testutil.ErrorIs(t, err, bsonuuid.ErrMalformedPayload)
}

func TestRegistryUnspecifiedAmbient(t *testing.T) {
	reg, err := bsonuuid.NewRegistry(bsonuuid.Unspecified, map[string]bsonuuid.Codec{
		"legacy_id": bsonuuid.NewCodec(bsonuuid.PythonLegacy),
	})
	require.NoError(t, err)

	_, err = reg.Encode("legacy_id", matrix.Fixture)
	require.NoError(t, err)

	// fields without a codec cannot be resolved
	_, err = reg.Encode("_id", matrix.Fixture)
	testutil.ErrorIs(t, err, bsonuuid.ErrUnresolvedRepresentation)
	_, err = reg.Representation("_id")
	testutil.ErrorIs(t, err, bsonuuid.ErrUnresolvedRepresentation)
}

func TestNewRegistryFailsEarly(t *testing.T) {
	_, err := bsonuuid.NewRegistry(bsonuuid.Unspecified, map[string]bsonuuid.Codec{
		"ok":     bsonuuid.NewCodec(bsonuuid.Standard),
		"broken": bsonuuid.NewCodec(bsonuuid.Unspecified),
	})
	testutil.ErrorIs(t, err, bsonuuid.ErrUnresolvedRepresentation)
	require.True(t, bsonuuid.IsConfigurationError(err))
	require.Contains(t, err.Error(), `field "broken"`)

	_, err = bsonuuid.NewRegistry(bsonuuid.Representation(9), nil)
	testutil.ErrorIs(t, err, bsonuuid.ErrUnknownRepresentation)

	_, err = bsonuuid.NewRegistry(bsonuuid.Standard, map[string]bsonuuid.Codec{
		"weird": bsonuuid.NewCodec(bsonuuid.Representation(9)),
	})
	testutil.ErrorIs(t, err, bsonuuid.ErrUnknownRepresentation)
}

func TestRegistryLogsOverrides(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prev := bsonuuid.Logger()
	bsonuuid.SetLogger(zap.New(core))
	defer bsonuuid.SetLogger(prev)

	_, err := bsonuuid.NewRegistry(bsonuuid.Standard, map[string]bsonuuid.Codec{
		"same":     bsonuuid.NewCodec(bsonuuid.Standard),
		"deferred": bsonuuid.NewCodec(bsonuuid.Unspecified),
		"legacy":   bsonuuid.NewCodec(bsonuuid.JavaLegacy),
	})
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "explicit uuid representation overrides ambient", entries[0].Message)
	require.Equal(t, "legacy", entries[0].ContextMap()["field"])
	require.Equal(t, "javaLegacy", entries[0].ContextMap()["explicit"])
}
