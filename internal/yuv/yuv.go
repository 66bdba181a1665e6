package yuv

import (
	"image/color"
	"math"
)

// https://github.com/opencv/opencv/blob/0e88b49a53842f0f7cdc4c61b98c283be7e5057c/modules/imgproc/src/opencl/color_yuv.cl#L148-L234

const (
	yr = 0.299
	yg = 0.587
	yb = 0.114
)

// LumaBatch writes the Y component of every pixel into y on the 0..255 scale.
// Gray pixels are taken as they are.
func LumaBatch(pixels []color.Color, y []float64) {
	for i, pixel := range pixels {
		if g, ok := pixel.(color.Gray); ok {
			y[i] = float64(g.Y)
			continue
		}
		r32, g32, b32, _ := pixel.RGBA()
		r := float64(r32 >> 8)
		g := float64(g32 >> 8)
		b := float64(b32 >> 8)
		y[i] = yr*r + yg*g + yb*b
	}
}

// Clip8 rounds v to the nearest 8-bit sample, saturating at 0 and 255.
func Clip8(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
