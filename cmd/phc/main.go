package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
)

// CLI is the root command.
type CLI struct {
	Verbose int `help:"Log verbosity, can be repeated." short:"v" type:"counter"`

	Value ValueCLI `cmd:"" help:"Validate and inspect a PHC parameter value."`
	Hash  HashCLI  `cmd:"" help:"Hash a password with argon2id and print the PHC string."`
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("phc"),
		kong.Description("Tools for the PHC string format's parameter values."),
		kong.UsageOnError(),
	)

	logger := newLogger(cli.Verbose)
	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}

func newLogger(verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch verbosity {
	case 0:
	case 1:
		level = slog.LevelInfo
	default: // 2+
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}
