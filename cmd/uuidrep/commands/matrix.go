package commands

import (
	"context"
	"runtime"

	"github.com/chaisql/bsonuuid/cmd/uuidrep/uuidutil"
	"github.com/urfave/cli/v3"
)

// NewMatrixCommand returns a cli.Command for "uuidrep matrix".
func NewMatrixCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "matrix",
		Usage:     "Run the compatibility matrix of ambient and explicit representations",
		UsageText: `uuidrep matrix [--uuid uuid ...] [--workers n]`,
		Description: `The matrix command writes a UUID through an explicit codec for every pair of
ambient and explicit representations, reads it back, and reads it again as a
connection without the explicit codec would. It prints one line per pair and
fails if a value does not survive its own representation.

$ uuidrep matrix --uuid 00112233-4455-6677-8899-aabbccddeeff`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "uuid",
				Aliases: []string{"u"},
				Usage:   "UUID to run the matrix with. Defaults to 00112233-4455-6677-8899-aabbccddeeff.",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Value:   runtime.GOMAXPROCS(0),
				Usage:   "Number of cases evaluated concurrently.",
			},
		},
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		return uuidutil.Matrix(ctx, cmd.Root().Writer, uuidutil.MatrixOptions{
			UUIDs:   cmd.StringSlice("uuid"),
			Workers: cmd.Int("workers"),
		})
	}

	return &cmd
}
