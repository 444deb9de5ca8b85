package commands

import (
	"context"

	"github.com/chaisql/bsonuuid/cmd/uuidrep/uuidutil"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

// NewEncodeCommand returns a cli.Command for "uuidrep encode".
func NewEncodeCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "encode",
		Usage:     "Encode a UUID the way a connection would store it",
		UsageText: `uuidrep encode [options] uuid`,
		Description: `The encode command prints the binary value written for a UUID.

The representation is resolved like on a connection: the -r option acts as an
explicit codec, then the codec of the -f field in the profile, then the ambient
representation.

$ uuidrep encode -a standard 00112233-4455-6677-8899-aabbccddeeff
04:00112233445566778899aabbccddeeff

$ uuidrep encode -a standard -r javaLegacy --format json 00112233-4455-6677-8899-aabbccddeeff
{"$binary":{"base64":"d2ZVRDMiEQD/7t3Mu6qZiA==","subType":"03"}}`,
		Flags: connectionFlags(),
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		id := cmd.Args().First()
		if id == "" {
			return errors.New(cmd.UsageText)
		}

		t, format, err := target(cmd)
		if err != nil {
			return err
		}

		return uuidutil.Encode(cmd.Root().Writer, t, id, format)
	}

	return &cmd
}
