package block

import "image"

// BlockMap maps row-major sample indexes to a block-major layout: complete
// blocks first, in raster order, each stored row-major, followed by the right
// margin and then the bottom margin.
type BlockMap struct {
	width, height int // plane dimensions
	size          int // block edge

	cols                    int // blocks per row
	allocWidth, allocHeight int // area covered by complete blocks
	marginWidth             int // width of the right margin
	blockArea               int // size * size
	totalAllocArea          int // allocWidth * allocHeight
	blockRowArea            int // allocWidth * size
}

func NewBlockMap(w, h, size int) BlockMap {
	var m = BlockMap{
		width:  w,
		height: h,
		size:   size,
	}
	m.cols = w / size
	m.allocWidth, m.allocHeight = m.cols*size, (h/size)*size
	m.marginWidth = w - m.allocWidth
	m.blockArea = size * size
	m.totalAllocArea = m.allocWidth * m.allocHeight
	m.blockRowArea = m.allocWidth * size
	return m
}

// Count returns the number of complete blocks.
func (m BlockMap) Count() int {
	return m.totalAllocArea / m.blockArea
}

// Origin returns the top-left sample of block i.
func (m BlockMap) Origin(i int) image.Point {
	return image.Pt((i%m.cols)*m.size, (i/m.cols)*m.size)
}

func (m BlockMap) GetMap() []int {
	result := make([]int, m.width*m.height)
	for i := range result {
		result[i] = m.get(i)
	}
	return result
}

func (m BlockMap) get(i int) int {
	x, y := i%m.width, i/m.width
	if m.allocHeight <= y {
		// bottom margin keeps its row-major offset
		return i
	}
	if mx := x - m.allocWidth; mx >= 0 {
		// right margin
		return m.totalAllocArea +
			y*m.marginWidth + mx
	}
	brow, bcol := y/m.size, x/m.size
	start := brow*m.blockRowArea + bcol*m.blockArea
	bx, by := x%m.size, y%m.size
	return start + by*m.size + bx
}
