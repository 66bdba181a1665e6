// Package quality measures how far a marked image drifted from its carrier.
package quality

import (
	"fmt"
	"image"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/yyyoichi/watermark_dihedral/internal/watermark"
)

const peak = 255.0

// MSE returns the mean squared error between the luma of a and b.
func MSE(a, b image.Image) (float64, error) {
	if a.Bounds().Dx() != b.Bounds().Dx() || a.Bounds().Dy() != b.Bounds().Dy() {
		return 0, fmt.Errorf("size mismatch: %v vs %v", a.Bounds().Size(), b.Bounds().Size())
	}
	pa := watermark.NewImageSource(a).Plane().Pix
	pb := watermark.NewImageSource(b).Plane().Pix
	if len(pa) == 0 {
		return 0, nil
	}
	d := floats.Distance(pa, pb, 2)
	return d * d / float64(len(pa)), nil
}

// PSNR returns the peak signal to noise ratio in dB. Identical images give +Inf.
func PSNR(a, b image.Image) (float64, error) {
	mse, err := MSE(a, b)
	if err != nil {
		return 0, err
	}
	if mse == 0 {
		return math.Inf(1), nil
	}
	return 10 * math.Log10(peak*peak/mse), nil
}
