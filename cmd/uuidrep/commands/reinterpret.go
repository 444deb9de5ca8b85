package commands

import (
	"context"

	"github.com/chaisql/bsonuuid/cmd/uuidrep/uuidutil"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

// NewReinterpretCommand returns a cli.Command for "uuidrep reinterpret".
func NewReinterpretCommand() *cli.Command {
	return &cli.Command{
		Name:      "reinterpret",
		Usage:     "Show the UUID a binary value holds under every representation",
		UsageText: `uuidrep reinterpret [--format text|json|element] value`,
		Description: `The reinterpret command ignores the subtype of a binary value and decodes its
payload with the byte layout of every representation. It helps finding out
which driver wrote a value.

$ uuidrep reinterpret 03:7766554433221100ffeeddccbbaa9988`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Value: string(uuidutil.FormatText),
				Usage: "Format of the binary value: text, json or element.",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			value := cmd.Args().First()
			if value == "" {
				return errors.New(cmd.UsageText)
			}

			format, err := uuidutil.ParseFormat(cmd.String("format"))
			if err != nil {
				return err
			}

			return uuidutil.Reinterpret(cmd.Root().Writer, value, format)
		},
	}
}
