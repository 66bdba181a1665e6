package watermark

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/yyyoichi/watermark_dihedral/internal/bitconv"
	"github.com/yyyoichi/watermark_dihedral/internal/block"
	"github.com/yyyoichi/watermark_dihedral/internal/dct"
	"github.com/yyyoichi/watermark_dihedral/internal/orient"
)

// Result is a mark recovered from a carrier.
type Result struct {
	Bits []bool
	// Orientation is the transform that, applied to the candidate image,
	// restored the embedded layout.
	Orientation orient.Orientation
}

// TryExtract reads frameLen frame bits from p in its current orientation.
// It returns the bits after the preamble when the first preambleLen decoded
// bits equal the preamble, and false otherwise.
func TryExtract(p block.Plane, frameLen, preambleLen int, prm Params, dcos *dct.DCT) ([]bool, bool) {
	var (
		blocks = block.Partition(p, block.Size)
		layout = NewLayout(len(blocks), prm.Redundancy)
		bits   = make([]bool, frameLen)
		votes  = make([]bool, 0, 2*prm.Redundancy)
		slots  []int
	)
	for b := range frameLen {
		slots = layout.Slots(slots[:0], b)
		votes = votes[:0]
		for _, at := range slots {
			votes = append(votes, readBit(dcos.Forward(blocks[at].Pix), prm.Coefficient))
		}
		bits[b] = bitconv.Majority(votes)
	}

	decoded := bitconv.MajorityVote(bits, prm.Repeat)
	if len(decoded) < preambleLen || !slices.Equal(decoded[:preambleLen], bitconv.Preamble()) {
		return nil, false
	}
	return decoded[preambleLen:], true
}

// Extract searches every orientation of src for a frame carrying markLen
// mark bits. Orientations are tried concurrently; the reported match is the
// first one in orient.All order. No match is not an error.
func Extract(ctx context.Context, src ImageSource, markLen int, p Params, dcos *dct.DCT) (Result, bool, error) {
	var (
		frameLen   = FrameLen(markLen, p.Repeat)
		variants   = orient.All()
		recovered  = make([][]bool, len(variants))
		recognized = make([]bool, len(variants))
	)
	g, ctx := errgroup.WithContext(ctx)
	for i, o := range variants {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			recovered[i], recognized[i] = TryExtract(orient.Apply(o, src.plane), frameLen, bitconv.PreambleLen, p, dcos)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, false, err
	}
	for i, o := range variants {
		if recognized[i] {
			return Result{Bits: recovered[i], Orientation: o}, true, nil
		}
	}
	return Result{}, false, nil
}
