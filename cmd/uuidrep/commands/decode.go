package commands

import (
	"context"

	"github.com/chaisql/bsonuuid/cmd/uuidrep/uuidutil"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

// NewDecodeCommand returns a cli.Command for "uuidrep decode".
func NewDecodeCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "decode",
		Usage:     "Decode a stored binary value into a UUID",
		UsageText: `uuidrep decode [options] value`,
		Description: `The decode command prints the UUID held by a binary value.

The value is rejected if its subtype is not the one written by the resolved
representation, or if its payload is not 16 bytes long.

$ uuidrep decode -a javaLegacy 03:7766554433221100ffeeddccbbaa9988
00112233-4455-6677-8899-aabbccddeeff

$ uuidrep decode -a standard 03:7766554433221100ffeeddccbbaa9988
error: cannot decode a subtype 3 (uuid (legacy)) binary value with the standard uuid representation, which expects subtype 4 (uuid)`,
		Flags: connectionFlags(),
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		value := cmd.Args().First()
		if value == "" {
			return errors.New(cmd.UsageText)
		}

		t, format, err := target(cmd)
		if err != nil {
			return err
		}

		return uuidutil.Decode(cmd.Root().Writer, t, value, format)
	}

	return &cmd
}
