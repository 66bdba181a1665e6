// Command wmark embeds text marks into images and finds them again after
// the image was flipped or rotated.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Verbose bool             `help:"Log debug records" short:"v"`
	Config  kong.ConfigFlag  `help:"Load flag defaults from a JSON file"`
	Embed   EmbedCmd         `cmd:"" help:"Embed a text mark into an image"`
	Extract ExtractCmd       `cmd:"" help:"Search an image, in all eight orientations, for a text mark"`
	Attack  AttackCmd        `cmd:"" help:"Degrade an image to check how robust a mark is"`
	Version kong.VersionFlag `help:"Print version information and quit"`
}

var version = "dev"

func newParser(cli *CLI, opts ...kong.Option) (*kong.Kong, error) {
	opts = append([]kong.Option{
		kong.Name("wmark"),
		kong.Description("Blind DCT watermarking that survives flips and rotations."),
		kong.UsageOnError(),
		kong.DefaultEnvars("WMARK"),
		kong.Configuration(kong.JSON, "~/.config/wmark.json"),
		kong.Vars{"version": version},
	}, opts...)
	return kong.New(cli, opts...)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(ctx context.Context, kctx *kong.Context, logger *slog.Logger, stdout io.Writer) error {
	kctx.BindTo(ctx, (*context.Context)(nil))
	kctx.BindTo(stdout, (*io.Writer)(nil))
	return kctx.Run(logger)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	logger := newLogger(os.Stderr, cli.Verbose)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, kctx, logger, os.Stdout); err != nil {
		logger.Error("command failed", "command", kctx.Command(), "error", err)
		stop()
		os.Exit(1)
	}
}
