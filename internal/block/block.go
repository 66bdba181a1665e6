package block

import "image"

// Size is the edge length of the blocks the codec works on.
const Size = 8

// Plane is a single channel of samples stored in row-major order.
type Plane struct {
	Width, Height int
	Pix           []float64
}

func NewPlane(width, height int) Plane {
	return Plane{Width: width, Height: height, Pix: make([]float64, width*height)}
}

func (p Plane) At(x, y int) float64 {
	return p.Pix[y*p.Width+x]
}

func (p Plane) Set(x, y int, v float64) {
	p.Pix[y*p.Width+x] = v
}

func (p Plane) Clone() Plane {
	c := p
	c.Pix = make([]float64, len(p.Pix))
	copy(c.Pix, p.Pix)
	return c
}

// Paste writes every block at its position. Samples falling outside the plane are ignored.
func (p Plane) Paste(blocks []Block, size int) {
	for _, b := range blocks {
		for y := range size {
			py := b.Pos.Y + y
			if py < 0 || py >= p.Height {
				continue
			}
			for x := range size {
				px := b.Pos.X + x
				if px < 0 || px >= p.Width {
					continue
				}
				p.Pix[py*p.Width+px] = b.Pix[y*size+x]
			}
		}
	}
}

// Block is one size x size tile of a Plane. Pos is the top-left sample.
type Block struct {
	Pos image.Point
	Pix []float64
}

// Count returns the number of complete blocks in a width x height plane.
func Count(width, height, size int) int {
	return (width / size) * (height / size)
}

// Partition splits p into complete size x size blocks in raster order.
// Samples in a partial right or bottom margin are not part of any block.
//
// All blocks share one block-major buffer, so Pix of neighbouring blocks are
// adjacent slices of it.
func Partition(p Plane, size int) []Block {
	m := NewBlockMap(p.Width, p.Height, size)
	buf := make([]float64, len(p.Pix))
	for i, at := range m.GetMap() {
		buf[at] = p.Pix[i]
	}
	area := m.blockArea
	blocks := make([]Block, m.Count())
	for i := range blocks {
		blocks[i] = Block{
			Pos: m.Origin(i),
			Pix: buf[i*area : (i+1)*area : (i+1)*area],
		}
	}
	return blocks
}

// Reconstruct builds a width x height plane from blocks. Positions no block covers stay zero.
func Reconstruct(blocks []Block, width, height, size int) Plane {
	p := NewPlane(width, height)
	p.Paste(blocks, size)
	return p
}
