package watermark

import (
	"context"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yyyoichi/watermark_dihedral/internal/block"
	"github.com/yyyoichi/watermark_dihedral/internal/dct"
)

type assignment struct {
	at  int // block index
	bit bool
}

// Embed writes mark into a copy of src and returns the watermarked image.
// src is never modified. The capacity check runs before any block is touched.
func Embed(ctx context.Context, src ImageSource, mark []bool, p Params, dcos *dct.DCT) (*image.Gray, error) {
	var (
		frame  = Frame(mark, p.Repeat)
		blocks = block.Partition(src.plane, block.Size)
		layout = NewLayout(len(blocks), p.Redundancy)
	)
	if err := layout.Enable(len(frame)); err != nil {
		return nil, err
	}

	// Claims are made in frame order, before any block is transformed.
	var (
		claimed = make([]bool, len(blocks))
		assigns = make([]assignment, 0, 2*layout.Required(len(frame)))
		slots   []int
	)
	for b, bit := range frame {
		slots = layout.Slots(slots[:0], b)
		for _, at := range slots {
			if claimed[at] {
				continue
			}
			claimed[at] = true
			assigns = append(assigns, assignment{at: at, bit: bit})
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, a := range assigns {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			coeffs, idct := dcos.Exec(blocks[a.at].Pix)
			embedBit(coeffs, p.Coefficient, a.bit, p.Delta)
			idct()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Samples outside the complete blocks keep their source values.
	dist := src.Copy()
	dist.plane.Paste(blocks, block.Size)
	return dist.Gray(), nil
}
