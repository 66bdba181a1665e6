package main

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/yyyoichi/watermark_dihedral/internal/attack"
	"github.com/yyyoichi/watermark_dihedral/internal/imageio"
	"github.com/yyyoichi/watermark_dihedral/internal/orient"
)

type AttackCmd struct {
	Kind        string  `arg:"" help:"Attack to apply" enum:"jpeg,noise,rescale,orient"`
	Input       string  `arg:"" help:"Source image" type:"existingfile"`
	Output      string  `arg:"" help:"Destination, written as PNG, BMP or TIFF by extension"`
	Quality     int     `help:"JPEG quality" default:"10" group:"jpeg"`
	Std         float64 `help:"Deviation of the gaussian noise" default:"10" group:"noise"`
	Seed        uint64  `help:"Noise seed" default:"1" group:"noise"`
	Scale       float64 `help:"Intermediate scale factor" default:"0.5" group:"rescale"`
	Orientation string  `help:"Flip or rotation to apply" default:"rot90" group:"orient"`
}

func (c *AttackCmd) Validate(kctx *kong.Context) error {
	if _, err := orient.Parse(c.Orientation); err != nil {
		return err
	}
	if c.Std < 0 {
		return fmt.Errorf("invalid noise deviation: %v", c.Std)
	}
	return nil
}

func (c *AttackCmd) Run(logger *slog.Logger) error {
	img, _, err := imageio.Load(c.Input)
	if err != nil {
		return err
	}

	var out image.Image
	switch c.Kind {
	case "jpeg":
		out, err = attack.JPEG(img, c.Quality)
	case "noise":
		out = attack.Noise(img, c.Std, c.Seed)
	case "rescale":
		out, err = attack.Rescale(img, c.Scale)
	case "orient":
		o, _ := orient.Parse(c.Orientation)
		out = attack.Orient(img, o)
	}
	if err != nil {
		return fmt.Errorf("could not apply %s attack: %w", c.Kind, err)
	}
	if err := imageio.Save(c.Output, out); err != nil {
		return err
	}
	logger.Info("attacked", "kind", c.Kind, "file", c.Input, "output", c.Output)
	return nil
}
