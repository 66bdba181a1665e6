// Package attack degrades marked images the way ordinary processing does,
// to measure how much of a mark survives.
package attack

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"math/rand/v2"

	"golang.org/x/image/draw"

	"github.com/yyyoichi/watermark_dihedral/internal/orient"
	"github.com/yyyoichi/watermark_dihedral/internal/watermark"
)

// JPEG round-trips img through JPEG compression at the given quality (1-100).
func JPEG(img image.Image, quality int) (image.Image, error) {
	if quality < 1 || quality > 100 {
		return nil, fmt.Errorf("invalid JPEG quality: %d", quality)
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("could not encode JPEG: %w", err)
	}
	out, err := jpeg.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("could not decode JPEG: %w", err)
	}
	return out, nil
}

// Noise adds zero-mean gaussian noise with deviation std to the luma of img.
// The same seed always produces the same noise.
func Noise(img image.Image, std float64, seed uint64) *image.Gray {
	src := watermark.NewImageSource(img).Copy()
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	p := src.Plane()
	for i := range p.Pix {
		p.Pix[i] += r.NormFloat64() * std
	}
	return src.Gray()
}

// Rescale shrinks img by scale and stretches it back to its original size.
func Rescale(img image.Image, scale float64) (image.Image, error) {
	b := img.Bounds()
	w, h := int(float64(b.Dx())*scale), int(float64(b.Dy())*scale)
	if scale <= 0 || w < 1 || h < 1 {
		return nil, fmt.Errorf("invalid scale %v for %dx%d image", scale, b.Dx(), b.Dy())
	}
	small := image.NewRGBA64(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(small, small.Bounds(), img, b, draw.Src, nil)
	out := image.NewRGBA64(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.BiLinear.Scale(out, out.Bounds(), small, small.Bounds(), draw.Src, nil)
	return out, nil
}

// Orient flips or rotates the luma of img.
func Orient(img image.Image, o orient.Orientation) *image.Gray {
	p := orient.Apply(o, watermark.NewImageSource(img).Plane())
	return watermark.NewPlaneSource(p).Gray()
}
