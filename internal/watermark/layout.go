package watermark

import (
	"fmt"

	"github.com/yyyoichi/watermark_dihedral/internal/bitconv"
	"github.com/yyyoichi/watermark_dihedral/internal/block"
)

// Coefficient addresses one frequency of an 8x8 coefficient block: X is the
// row (vertical frequency) and Y the column (horizontal frequency).
type Coefficient struct {
	X, Y int
}

// Mirror returns the coefficient rotated 180 degrees inside the block.
func (c Coefficient) Mirror() Coefficient {
	return Coefficient{X: block.Size - 1 - c.X, Y: block.Size - 1 - c.Y}
}

func (c Coefficient) Valid() bool {
	return 0 <= c.X && c.X < block.Size && 0 <= c.Y && c.Y < block.Size
}

func (c Coefficient) offset() int {
	return c.X*block.Size + c.Y
}

// Params are the values embedder and extractor must agree on, plus the
// embedding strength Delta which only the embedder reads.
type Params struct {
	Redundancy  int
	Repeat      int
	Coefficient Coefficient
	Delta       float64
}

// Frame returns the bits actually written to the carrier: the preamble
// followed by mark, each bit repeated repeat times.
func Frame(mark []bool, repeat int) []bool {
	return bitconv.Repeat(append(bitconv.Preamble(), mark...), repeat)
}

// FrameLen returns len(Frame(mark, repeat)) for a mark of markLen bits.
func FrameLen(markLen, repeat int) int {
	return (bitconv.PreambleLen + markLen) * repeat
}

// Layout assigns frame bits to carrier blocks. It is the only place the
// addressing is computed; embedder and extractor both read it.
type Layout struct {
	blocks     int
	redundancy int
}

func NewLayout(totalBlocks, redundancy int) Layout {
	return Layout{blocks: totalBlocks, redundancy: redundancy}
}

// Capacity returns the number of usable block pairs, floor(N/2).
func (l Layout) Capacity() int {
	return l.blocks / 2
}

// Required returns the number of slots a frame of frameLen bits needs.
func (l Layout) Required(frameLen int) int {
	return frameLen * l.redundancy
}

// Enable reports an error when a frame of frameLen bits does not fit.
func (l Layout) Enable(frameLen int) error {
	if req, avail := l.Required(frameLen), l.Capacity(); req > avail {
		return fmt.Errorf("required slots %d > available block pairs %d", req, avail)
	}
	return nil
}

// Slots appends to dst the block indexes carrying frame bit b. For each rank r
// in [0, redundancy) the primary index idx = b*redundancy+r is followed by its
// mirror N-1-idx. Ranks with idx >= Capacity() are skipped.
func (l Layout) Slots(dst []int, b int) []int {
	for r := range l.redundancy {
		idx := b*l.redundancy + r
		if idx >= l.Capacity() {
			continue
		}
		dst = append(dst, idx, l.blocks-1-idx)
	}
	return dst
}

// MaxMarkLen returns the longest mark, in bits, a carrier of totalBlocks
// blocks can hold. It is negative when not even the preamble fits.
func MaxMarkLen(totalBlocks int, p Params) int {
	return totalBlocks/2/(p.Redundancy*p.Repeat) - bitconv.PreambleLen
}

// Enable reports an error when mark bits cannot be embedded into src.
func Enable(src ImageSource, markLen int, p Params) error {
	return NewLayout(src.TotalBlocks(), p.Redundancy).Enable(FrameLen(markLen, p.Repeat))
}

func pairDiff(coeffs []float64, c Coefficient) float64 {
	return coeffs[c.offset()] - coeffs[c.Mirror().offset()]
}

// embedBit moves the coefficient pair apart until its difference is above
// delta for a one, or below -delta for a zero.
func embedBit(coeffs []float64, c Coefficient, bit bool, delta float64) {
	c1, c2 := c.offset(), c.Mirror().offset()
	diff := coeffs[c1] - coeffs[c2]
	if bit {
		if diff <= delta {
			adjust := (delta-diff)/2 + 1
			coeffs[c1] += adjust
			coeffs[c2] -= adjust
		}
		return
	}
	if diff >= -delta {
		adjust := (delta+diff)/2 + 1
		coeffs[c1] -= adjust
		coeffs[c2] += adjust
	}
}

func readBit(coeffs []float64, c Coefficient) bool {
	return pairDiff(coeffs, c) > 0
}
