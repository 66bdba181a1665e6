package dct

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DCT is an orthonormal two-dimensional DCT-II over square blocks.
// It holds only the immutable basis and is safe for concurrent use.
type DCT struct {
	size  int
	basis *mat.Dense // basis[k][n] = scale(k) * cos(pi*k*(2n+1)/(2*size))
}

func New(size int) *DCT {
	n := float64(size)
	phi := make([]float64, size*size)
	for j := range size {
		// k = 0
		phi[j] = 1.0 / math.Sqrt(n)
	}
	for k := 1; k < size; k++ {
		for j := range size {
			phi[k*size+j] = math.Sqrt(2.0/n) *
				math.Cos(
					(float64(k)*math.Pi*(float64(j)*2+1))/
						(2.0*n),
				)
		}
	}
	return &DCT{size: size, basis: mat.NewDense(size, size, phi)}
}

func (d *DCT) Size() int { return d.size }

// Forward returns the coefficients of a row-major block; coefficient (row u, column v)
// is stored at u*size+v.
func (d *DCT) Forward(block []float64) []float64 {
	var res mat.Dense
	res.Product(d.basis, mat.NewDense(d.size, d.size, block), d.basis.T())
	return d.raw(&res)
}

// Inverse returns the row-major block whose coefficients are coeffs.
func (d *DCT) Inverse(coeffs []float64) []float64 {
	var res mat.Dense
	res.Product(d.basis.T(), mat.NewDense(d.size, d.size, coeffs), d.basis)
	return d.raw(&res)
}

// Exec transforms block and returns its coefficients together with a function
// that writes the inverse transform of the (possibly modified) coefficients
// back into block.
func (d *DCT) Exec(block []float64) ([]float64, func()) {
	coeffs := d.Forward(block)
	idct := func() {
		copy(block, d.Inverse(coeffs))
	}
	return coeffs, idct
}

func (d *DCT) raw(m *mat.Dense) []float64 {
	out := make([]float64, d.size*d.size)
	for i := range d.size {
		copy(out[i*d.size:(i+1)*d.size], m.RawRowView(i))
	}
	return out
}
