package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"

	watermark "github.com/yyyoichi/watermark_dihedral"
	"github.com/yyyoichi/watermark_dihedral/internal/block"
	"github.com/yyyoichi/watermark_dihedral/internal/imageio"
	"github.com/yyyoichi/watermark_dihedral/internal/quality"
	"github.com/yyyoichi/watermark_dihedral/mark"
)

type EmbedCmd struct {
	CodecParams
	Delta  float64 `help:"Minimum distance between paired coefficients" default:"60"`
	Fit    bool    `help:"Scale the image up to a multiple of 8 pixels first" default:"false"`
	Input  string  `arg:"" help:"Carrier image" type:"existingfile"`
	Output string  `arg:"" help:"Destination, written as PNG, BMP or TIFF by extension"`
	Text   string  `arg:"" help:"Text to embed"`
}

func (c *EmbedCmd) Validate(kctx *kong.Context) error {
	switch format := imageio.FormatOf(c.Output); format {
	case "png", "bmp", "tiff":
	default:
		return fmt.Errorf("invalid output %q: %q is not a lossless format", c.Output, format)
	}
	if c.Text == "" {
		return fmt.Errorf("no text to embed")
	}
	return nil
}

func (c *EmbedCmd) Run(ctx context.Context, logger *slog.Logger) error {
	logger = logger.With("file", c.Input)
	img, format, err := imageio.Load(c.Input)
	if err != nil {
		return err
	}
	if c.Fit {
		img = imageio.FitBlocks(img, block.Size)
	} else if b := img.Bounds(); b.Dx()%block.Size != 0 || b.Dy()%block.Size != 0 {
		logger.Warn("image size is not a multiple of 8, the margin is left unmarked",
			"width", b.Dx(), "height", b.Dy())
	}

	w, err := watermark.New(append(c.options(logger), watermark.WithDelta(c.Delta))...)
	if err != nil {
		return err
	}
	m := mark.NewString(c.Text, c.markOptions()...)
	logger.Info("embedding", "format", format, "bytes", len(c.Text), "bits", m.Len(),
		"max_bits", w.MaxMarkLen(img.Bounds()))

	marked, err := w.Embed(ctx, img, m)
	if err != nil {
		return err
	}
	if err := imageio.Save(c.Output, marked); err != nil {
		return err
	}

	psnr, err := quality.PSNR(img, marked)
	if err != nil {
		return err
	}
	logger.Info("embedded", "output", c.Output, "psnr", fmt.Sprintf("%.2f", psnr), "length", len(c.Text))
	return nil
}
