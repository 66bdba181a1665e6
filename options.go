package watermark

import (
	"fmt"
	"log/slog"

	"github.com/yyyoichi/watermark_dihedral/internal/watermark"
)

type Option func(*Watermark) error

// WithRedundancy sets how many block pairs carry each repeated bit.
// Larger values survive more noise but need a larger image. The default is 10.
func WithRedundancy(n int) Option {
	return func(w *Watermark) error {
		if n < 1 {
			return fmt.Errorf("%w: redundancy %d < 1", ErrInvalidOption, n)
		}
		w.params.Redundancy = n
		return nil
	}
}

// WithRepeat sets how many times every frame bit, preamble included, is
// repeated before it is spread over blocks. The default is 3.
func WithRepeat(k int) Option {
	return func(w *Watermark) error {
		if k < 1 {
			return fmt.Errorf("%w: repeat %d < 1", ErrInvalidOption, k)
		}
		w.params.Repeat = k
		return nil
	}
}

// WithCoefficient selects the DCT coefficient (row x, column y) paired with
// its mirror (7-x, 7-y). Mid frequencies work best. The default is (2, 3).
func WithCoefficient(x, y int) Option {
	return func(w *Watermark) error {
		c := watermark.Coefficient{X: x, Y: y}
		if !c.Valid() {
			return fmt.Errorf("%w: coefficient (%d, %d) outside the 8x8 block", ErrInvalidOption, x, y)
		}
		w.params.Coefficient = c
		return nil
	}
}

// WithDelta sets the minimum distance between the two coefficients of a pair
// after embedding. Larger values increase noise but improve robustness.
// Extraction ignores it. The default is 60.
func WithDelta(delta float64) Option {
	return func(w *Watermark) error {
		if delta < 0 {
			return fmt.Errorf("%w: delta %v < 0", ErrInvalidOption, delta)
		}
		w.params.Delta = delta
		return nil
	}
}

// WithLogger sets the logger that receives debug records. Nothing is logged by default.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watermark) error {
		if logger != nil {
			w.logger = logger
		}
		return nil
	}
}
