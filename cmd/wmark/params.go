package main

import (
	"log/slog"

	watermark "github.com/yyyoichi/watermark_dihedral"
	"github.com/yyyoichi/watermark_dihedral/mark"
)

// CodecParams must be equal when embedding and extracting.
type CodecParams struct {
	Redundancy int   `help:"Block pairs that carry each repeated bit" default:"10" group:"codec"`
	Repeat     int   `help:"Copies of every frame bit" default:"3" group:"codec"`
	CoefX      int   `help:"Row of the DCT coefficient paired with its mirror" default:"2" group:"codec"`
	CoefY      int   `help:"Column of the DCT coefficient paired with its mirror" default:"3" group:"codec"`
	Golay      bool  `help:"Protect the mark with a shuffled Golay code" default:"false" group:"codec"`
	Seed       int64 `help:"Shuffle seed of the Golay code" default:"1234567890" group:"codec"`
}

func (p CodecParams) options(logger *slog.Logger) []watermark.Option {
	return []watermark.Option{
		watermark.WithRedundancy(p.Redundancy),
		watermark.WithRepeat(p.Repeat),
		watermark.WithCoefficient(p.CoefX, p.CoefY),
		watermark.WithLogger(logger),
	}
}

func (p CodecParams) markOptions() []mark.Option {
	if p.Golay {
		return []mark.Option{mark.WithGolay(p.Seed)}
	}
	return []mark.Option{mark.WithoutECC()}
}
