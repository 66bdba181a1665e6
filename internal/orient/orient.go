// Package orient enumerates the eight flip/rotation variants of a plane
// (the dihedral group of the square) in the fixed order extraction tries them.
package orient

import (
	"fmt"

	"github.com/yyyoichi/watermark_dihedral/internal/block"
)

type Orientation uint8

const (
	Identity Orientation = iota
	// FlipH mirrors left to right.
	FlipH
	// FlipV mirrors top to bottom.
	FlipV
	// FlipHV applies both mirrors, a half turn.
	FlipHV
	// Rot90 is a quarter turn counter-clockwise.
	Rot90
	// Rot270 is a quarter turn clockwise.
	Rot270
	// Rot90FlipH is Rot90 then FlipH.
	Rot90FlipH
	// Rot270FlipH is Rot270 then FlipH, a transpose.
	Rot270FlipH
)

var names = [...]string{
	Identity:    "identity",
	FlipH:       "flip-h",
	FlipV:       "flip-v",
	FlipHV:      "flip-hv",
	Rot90:       "rot90",
	Rot270:      "rot270",
	Rot90FlipH:  "rot90-flip-h",
	Rot270FlipH: "rot270-flip-h",
}

// All returns every orientation in search priority order.
func All() []Orientation {
	return []Orientation{Identity, FlipH, FlipV, FlipHV, Rot90, Rot270, Rot90FlipH, Rot270FlipH}
}

func (o Orientation) String() string {
	if int(o) < len(names) {
		return names[o]
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// Parse returns the orientation named s.
func Parse(s string) (Orientation, error) {
	for i, n := range names {
		if n == s {
			return Orientation(i), nil
		}
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}

// Inverse returns the orientation that undoes o.
func (o Orientation) Inverse() Orientation {
	switch o {
	case Rot90:
		return Rot270
	case Rot270:
		return Rot90
	}
	return o
}

// Swaps reports whether o exchanges width and height.
func (o Orientation) Swaps() bool {
	return o >= Rot90
}

// Source returns the sample coordinate of p read for output position (x, y)
// of a plane of w x h samples transformed by o.
func (o Orientation) Source(x, y, w, h int) (int, int) {
	switch o {
	case FlipH:
		return w - 1 - x, y
	case FlipV:
		return x, h - 1 - y
	case FlipHV:
		return w - 1 - x, h - 1 - y
	case Rot90:
		return w - 1 - y, x
	case Rot270:
		return y, h - 1 - x
	case Rot90FlipH:
		return w - 1 - y, h - 1 - x
	case Rot270FlipH:
		return y, x
	}
	return x, y
}

// Apply returns a new plane holding p transformed by o.
func Apply(o Orientation, p block.Plane) block.Plane {
	if o == Identity {
		return p.Clone()
	}
	w, h := p.Width, p.Height
	if o.Swaps() {
		w, h = h, w
	}
	out := block.NewPlane(w, h)
	for y := range h {
		for x := range w {
			sx, sy := o.Source(x, y, p.Width, p.Height)
			out.Pix[y*w+x] = p.Pix[sy*p.Width+sx]
		}
	}
	return out
}
