package commands

import (
	"github.com/chaisql/bsonuuid"
	"github.com/chaisql/bsonuuid/cmd/uuidrep/uuidutil"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// NewApp creates the uuidrep CLI app.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:                  "uuidrep",
		Usage:                 "Inspect UUIDs stored in binary values under the standard and legacy representations",
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			NewEncodeCommand(),
			NewDecodeCommand(),
			NewReinterpretCommand(),
			NewMatrixCommand(),
			NewVersionCommand(),
		},
	}
}

// connectionFlags are shared by the commands that resolve representations
// the way a connection does.
func connectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "TOML profile holding the ambient representation and the field codecs.",
			Sources: cli.EnvVars("UUIDREP_CONFIG"),
		},
		&cli.StringFlag{
			Name:    "ambient",
			Aliases: []string{"a"},
			Usage:   "Ambient representation of the connection. Overrides the profile.",
		},
		&cli.StringFlag{
			Name:    "field",
			Aliases: []string{"f"},
			Usage:   "Name of the field, used to pick its codec from the profile.",
		},
		&cli.StringFlag{
			Name:    "representation",
			Aliases: []string{"r"},
			Usage:   "Representation of an explicit codec. Overrides the field codec.",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: string(uuidutil.FormatText),
			Usage: "Format of binary values: text, json or element.",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Log debug information to stderr.",
		},
	}
}

// setupLogger installs a development logger when --verbose is set.
func setupLogger(cmd *cli.Command) (*zap.Logger, error) {
	if !cmd.Bool("verbose") {
		return bsonuuid.Logger(), nil
	}

	l, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}

	bsonuuid.SetLogger(l)
	return l, nil
}

// target builds the codec selection described by the connection flags.
func target(cmd *cli.Command) (uuidutil.Target, uuidutil.Format, error) {
	logger, err := setupLogger(cmd)
	if err != nil {
		return uuidutil.Target{}, "", err
	}

	profile, err := uuidutil.LoadProfile(cmd.String("config"))
	if err != nil {
		return uuidutil.Target{}, "", err
	}

	if cmd.IsSet("ambient") {
		profile.Ambient, err = bsonuuid.ParseRepresentation(cmd.String("ambient"))
		if err != nil {
			return uuidutil.Target{}, "", err
		}
	}

	explicit, err := bsonuuid.ParseRepresentation(cmd.String("representation"))
	if err != nil {
		return uuidutil.Target{}, "", err
	}

	format, err := uuidutil.ParseFormat(cmd.String("format"))
	if err != nil {
		return uuidutil.Target{}, "", err
	}

	reg, err := profile.Registry()
	if err != nil {
		return uuidutil.Target{}, "", err
	}

	logger.Debug("resolved connection",
		zap.Stringer("ambient", profile.Ambient),
		zap.Int("fields", len(profile.Fields)),
		zap.String("field", cmd.String("field")),
		zap.Stringer("explicit", explicit),
	)

	return uuidutil.Target{
		Registry: reg,
		Field:    cmd.String("field"),
		Explicit: explicit,
	}, format, nil
}
