package watermark

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/yyyoichi/watermark_dihedral/internal/block"
	"github.com/yyyoichi/watermark_dihedral/internal/dct"
	"github.com/yyyoichi/watermark_dihedral/internal/orient"
	"github.com/yyyoichi/watermark_dihedral/internal/watermark"
)

var (
	ErrCapacityExceeded = errors.New("mark does not fit into the image")
	ErrInvalidOption    = errors.New("invalid option")
)

// Orientation names one of the eight flip/rotation variants of an image.
type Orientation = orient.Orientation

const (
	Identity    = orient.Identity
	FlipH       = orient.FlipH
	FlipV       = orient.FlipV
	FlipHV      = orient.FlipHV
	Rot90       = orient.Rot90
	Rot270      = orient.Rot270
	Rot90FlipH  = orient.Rot90FlipH
	Rot270FlipH = orient.Rot270FlipH
)

// Embed embeds a mark into an image with the specified options.
// This is a convenience function that creates a Watermark instance and calls its Embed method.
func Embed(ctx context.Context, src image.Image, mark EmbedMark, opts ...Option) (*image.Gray, error) {
	w, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return w.Embed(ctx, src, mark)
}

// Extract searches an image for a mark with the specified options.
// This is a convenience function that creates a Watermark instance and calls its Extract method.
func Extract(ctx context.Context, src image.Image, mark ExtractMark, opts ...Option) (Extraction, bool, error) {
	w, err := New(opts...)
	if err != nil {
		return Extraction{}, false, err
	}
	return w.Extract(ctx, src, mark)
}

type Watermark struct {
	params watermark.Params
	logger *slog.Logger
	dcos   *dct.DCT
}

// Extraction is a mark recovered by Extract.
type Extraction struct {
	MarkDecoder
	// Orientation is the transform that, applied to the searched image,
	// restored the layout written by Embed.
	Orientation Orientation
}

// New initializes a watermark processing structure.
// Embedder and extractor must be built with the same redundancy, repeat and
// coefficient; the delta only affects embedding.
// For default values, refer to the init function.
func New(opts ...Option) (*Watermark, error) {
	w := new(Watermark)
	if err := w.init(opts...); err != nil {
		return nil, err
	}
	return w, nil
}

// Embed embeds a mark into the luma of an image.
//
// Process:
//  1. Converts the image to 8-bit luma.
//  2. Prefixes the mark with the 32-bit preamble and repeats every bit.
//  3. Divides the image into 8x8 blocks in raster order.
//  4. Writes each bit into the sign of a DCT coefficient pair, in the block
//     pairs (i, N-1-i) reserved for it.
//  5. Applies the inverse DCT and rounds back to 8-bit samples.
//
// Returns ErrCapacityExceeded, before touching any sample, if the image has
// too few blocks for the mark. Width and height should be multiples of 8;
// samples in a partial margin are copied unmodified.
func (w *Watermark) Embed(ctx context.Context, src image.Image, mark EmbedMark) (*image.Gray, error) {
	img := watermark.NewImageSource(src)
	if err := watermark.Enable(img, mark.Len(), w.params); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCapacityExceeded, err)
	}
	bits := make([]bool, mark.Len())
	for i := range bits {
		bits[i] = mark.GetBit(i)
	}
	w.logger.DebugContext(ctx, "embedding mark",
		"bounds", img.Bounds(),
		"blocks", img.TotalBlocks(),
		"mark_bits", len(bits),
		"frame_bits", watermark.FrameLen(len(bits), w.params.Repeat),
	)
	return watermark.Embed(ctx, img, bits, w.params, w.dcos)
}

// Extract searches an image for a mark of mark.Len() bits.
//
// Process:
//  1. Converts the image to 8-bit luma.
//  2. Builds the eight flipped and rotated variants of the image.
//  3. Reads every frame bit from the coefficient pairs of its blocks and
//     takes the majority of those votes, then of the repeated copies.
//  4. Accepts the first variant, in Orientation order, whose decoded
//     bits start with the preamble.
//
// The boolean result is false, with a nil error, when no variant carries the
// preamble. The mark length is not stored in the image; extracting with a
// wrong length fails the preamble check or yields a garbled mark.
func (w *Watermark) Extract(ctx context.Context, src image.Image, mark ExtractMark) (Extraction, bool, error) {
	img := watermark.NewImageSource(src)
	res, ok, err := watermark.Extract(ctx, img, mark.Len(), w.params, w.dcos)
	if err != nil {
		return Extraction{}, false, err
	}
	if !ok {
		w.logger.DebugContext(ctx, "no orientation carries the preamble", "mark_bits", mark.Len())
		return Extraction{}, false, nil
	}
	w.logger.DebugContext(ctx, "preamble found", "orientation", res.Orientation)
	return Extraction{
		MarkDecoder: mark.NewDecoder(res.Bits),
		Orientation: res.Orientation,
	}, true, nil
}

// MaxMarkLen returns the number of mark bits an image with the given bounds
// can carry. A negative value means not even the preamble fits.
func (w *Watermark) MaxMarkLen(bounds image.Rectangle) int {
	return watermark.MaxMarkLen(block.Count(bounds.Dx(), bounds.Dy(), block.Size), w.params)
}

func (w *Watermark) init(opts ...Option) error {
	w.params = watermark.Params{
		Redundancy:  10,
		Repeat:      3,
		Coefficient: watermark.Coefficient{X: 2, Y: 3},
		Delta:       60,
	}
	w.logger = slog.New(slog.DiscardHandler)
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return err
		}
	}
	w.dcos = dct.New(block.Size)
	return nil
}
