package yuv

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLumaBatch(t *testing.T) {
	pixels := []color.Color{
		color.Gray{Y: 77},
		color.RGBA{R: 255, G: 255, B: 255, A: 255},
		color.RGBA{A: 255},
		color.RGBA{R: 255, A: 255},
		color.Gray16{Y: 0x8080},
	}
	y := make([]float64, len(pixels))
	LumaBatch(pixels, y)

	assert.Equal(t, 77.0, y[0])
	assert.InDelta(t, 255, y[1], 1e-9)
	assert.Zero(t, y[2])
	assert.InDelta(t, 0.299*255, y[3], 1e-9)
	assert.InDelta(t, 128, y[4], 1e-9)
}

func TestClip8(t *testing.T) {
	test := []struct {
		in  float64
		exp uint8
	}{
		{-12.3, 0},
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{127.6, 128},
		{254.4, 254},
		{254.5, 255},
		{300, 255},
		{math.NaN(), 0},
	}
	for _, tt := range test {
		assert.Equal(t, tt.exp, Clip8(tt.in), "%v", tt.in)
	}
}
