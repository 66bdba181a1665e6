package watermark

import (
	"image"
	"image/color"

	"github.com/yyyoichi/watermark_dihedral/internal/block"
	"github.com/yyyoichi/watermark_dihedral/internal/yuv"
)

// ImageSource is a carrier reduced to its luma samples.
type ImageSource struct {
	bounds image.Rectangle
	plane  block.Plane
}

func NewImageSource(src image.Image) ImageSource {
	var s ImageSource
	s.bounds = src.Bounds()
	width, height := s.bounds.Dx(), s.bounds.Dy()
	s.plane = block.NewPlane(width, height)

	if g, ok := src.(*image.Gray); ok {
		for y := range height {
			row := g.Pix[g.PixOffset(s.bounds.Min.X, s.bounds.Min.Y+y):]
			for x := range width {
				s.plane.Pix[y*width+x] = float64(row[x])
			}
		}
		return s
	}

	pixels := make([]color.Color, width*height)
	idx := 0
	for y := range height {
		for x := range width {
			pixels[idx] = src.At(s.bounds.Min.X+x, s.bounds.Min.Y+y)
			idx++
		}
	}
	yuv.LumaBatch(pixels, s.plane.Pix)
	return s
}

// NewPlaneSource wraps samples that are already in luma form.
func NewPlaneSource(p block.Plane) ImageSource {
	return ImageSource{
		bounds: image.Rect(0, 0, p.Width, p.Height),
		plane:  p,
	}
}

func (s ImageSource) Plane() block.Plane {
	return s.plane
}

func (s ImageSource) Bounds() image.Rectangle {
	return s.bounds
}

func (s ImageSource) TotalBlocks() int {
	return block.Count(s.plane.Width, s.plane.Height, block.Size)
}

func (s ImageSource) Copy() ImageSource {
	s.plane = s.plane.Clone()
	return s
}

// Gray clips and rounds the samples into an 8-bit image with the source bounds.
func (s ImageSource) Gray() *image.Gray {
	dist := image.NewGray(s.bounds)
	for y := range s.plane.Height {
		row := dist.Pix[dist.PixOffset(s.bounds.Min.X, s.bounds.Min.Y+y):]
		for x := range s.plane.Width {
			row[x] = yuv.Clip8(s.plane.Pix[y*s.plane.Width+x])
		}
	}
	return dist
}
