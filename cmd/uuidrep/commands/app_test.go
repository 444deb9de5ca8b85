package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chaisql/bsonuuid"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := NewApp()
	app.Writer = &buf
	app.ErrWriter = &buf

	err := app.Run(context.Background(), append([]string{"uuidrep"}, args...))
	return buf.String(), err
}

func TestEncodeCommand(t *testing.T) {
	out, err := run(t, "encode", "-a", "standard", "-r", "javaLegacy", "00112233-4455-6677-8899-aabbccddeeff")
	require.NoError(t, err)
	require.Equal(t, "03:7766554433221100ffeeddccbbaa9988\n", out)

	_, err = run(t, "encode", "00112233-4455-6677-8899-aabbccddeeff")
	require.ErrorIs(t, err, bsonuuid.ErrUnresolvedRepresentation)

	_, err = run(t, "encode", "-a", "standard")
	require.Error(t, err)
}

func TestDecodeCommand(t *testing.T) {
	out, err := run(t, "decode", "-a", "javaLegacy", "03:7766554433221100ffeeddccbbaa9988")
	require.NoError(t, err)
	require.Equal(t, "00112233-4455-6677-8899-aabbccddeeff\n", out)

	_, err = run(t, "decode", "-a", "standard", "03:7766554433221100ffeeddccbbaa9988")
	require.ErrorIs(t, err, bsonuuid.ErrSubtypeMismatch)
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uuidrep.toml")
	err := os.WriteFile(path, []byte(`
uuid_representation = "standard"

[fields]
legacy_id = "csharpLegacy"
`), 0o600)
	require.NoError(t, err)

	out, err := run(t, "encode", "-c", path, "-f", "legacy_id", "00112233-4455-6677-8899-aabbccddeeff")
	require.NoError(t, err)
	require.Equal(t, "03:33221100554477668899aabbccddeeff\n", out)

	// the ambient flag overrides the profile
	out, err = run(t, "encode", "-c", path, "-a", "pythonLegacy", "00112233-4455-6677-8899-aabbccddeeff")
	require.NoError(t, err)
	require.Equal(t, "03:00112233445566778899aabbccddeeff\n", out)
}

func TestMatrixCommand(t *testing.T) {
	out, err := run(t, "matrix", "-w", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 26)
	require.True(t, strings.HasPrefix(lines[0], "AMBIENT"))
}

func TestReinterpretCommand(t *testing.T) {
	out, err := run(t, "reinterpret", "03:7766554433221100ffeeddccbbaa9988")
	require.NoError(t, err)
	require.Contains(t, out, "00112233-4455-6677-8899-aabbccddeeff")
}
