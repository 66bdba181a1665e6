package bench_test

import (
	"image"
	"image/color"
	"testing"

	watermark "github.com/yyyoichi/watermark_dihedral"
	"github.com/yyyoichi/watermark_dihedral/mark"
)

var options = []struct {
	name string
	opts []watermark.Option
}{
	{name: "R4", opts: []watermark.Option{
		watermark.WithRedundancy(4),
	}},
	{name: "R10", opts: []watermark.Option{
		watermark.WithRedundancy(10),
	}},
	{name: "R40", opts: []watermark.Option{
		watermark.WithRedundancy(40),
	}},
	{name: "R10_Repeat5", opts: []watermark.Option{
		watermark.WithRedundancy(10),
		watermark.WithRepeat(5),
	}},
}

func BenchmarkEmbed_FHD(b *testing.B) {
	img := createImage(1920, 1080)
	m := createTestMark()
	ctx := b.Context()

	for _, tt := range options {
		b.Run(tt.name, func(b *testing.B) {
			w, err := watermark.New(tt.opts...)
			if err != nil {
				b.Fatalf("Failed to create Watermark instance (%s): %v", tt.name, err)
			}
			for b.Loop() {
				if _, err := w.Embed(ctx, img, m); err != nil {
					b.Fatalf("Failed to embed watermark (%s): %v", tt.name, err)
				}
			}
		})
	}
}

func BenchmarkExtract_FHD(b *testing.B) {
	img := createImage(1920, 1080)
	m := createTestMark()
	ctx := b.Context()

	for _, tt := range options {
		b.Run(tt.name, func(b *testing.B) {
			w, err := watermark.New(tt.opts...)
			if err != nil {
				b.Fatalf("Failed to create Watermark instance (%s): %v", tt.name, err)
			}
			marked, err := w.Embed(ctx, img, m)
			if err != nil {
				b.Fatalf("Failed to embed watermark (%s): %v", tt.name, err)
			}
			for b.Loop() {
				if _, ok, err := w.Extract(ctx, marked, m); err != nil || !ok {
					b.Fatalf("Failed to extract watermark (%s): ok=%v err=%v", tt.name, ok, err)
				}
			}
		})
	}
}

// createImage creates a widthxheight test image with gradient pattern
func createImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			r := uint8(32 + (x*191)/width)
			g := uint8(32 + (y*191)/height)
			b := uint8(32 + ((x+y)*191)/(width+height))
			img.Set(x, y, color.RGBA{r, g, b, 255})
		}
	}
	return img
}

// createTestMark creates a 32 bit test mark
func createTestMark() *mark.Mark {
	return mark.NewBools([]bool{
		true, false, true, true, false, false, true, false,
		false, true, false, true, true, false, true, true,
		true, true, false, false, true, false, false, true,
		false, false, true, true, false, true, true, false,
	})
}
