package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	watermark "github.com/yyyoichi/watermark_dihedral"
	"github.com/yyyoichi/watermark_dihedral/internal/imageio"
	"github.com/yyyoichi/watermark_dihedral/mark"
)

var errNotFound = errors.New("no mark found")

type ExtractCmd struct {
	CodecParams
	Input  string `arg:"" help:"Image to search" type:"existingfile"`
	Length int    `arg:"" help:"Length of the embedded text in bytes"`
}

func (c *ExtractCmd) Run(ctx context.Context, logger *slog.Logger, stdout io.Writer) error {
	if c.Length < 1 {
		return fmt.Errorf("invalid length: %d", c.Length)
	}
	logger = logger.With("file", c.Input)
	img, _, err := imageio.Load(c.Input)
	if err != nil {
		return err
	}

	w, err := watermark.New(c.options(logger)...)
	if err != nil {
		return err
	}
	res, ok, err := w.Extract(ctx, img, mark.NewExtract(c.Length*8, c.markOptions()...))
	if err != nil {
		return err
	}
	if !ok {
		return errNotFound
	}
	logger.Info("mark found", "orientation", res.Orientation)
	_, err = fmt.Fprintln(stdout, res.DecodeToString())
	return err
}
