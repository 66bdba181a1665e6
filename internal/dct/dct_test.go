package dct

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naive evaluates the 2D DCT-II sum directly.
func naive(size int, data []float64) []float64 {
	scale := func(k int) float64 {
		if k == 0 {
			return math.Sqrt(1 / float64(size))
		}
		return math.Sqrt(2 / float64(size))
	}
	out := make([]float64, size*size)
	for u := range size {
		for v := range size {
			sum := 0.0
			for x := range size {
				for y := range size {
					sum += data[x*size+y] *
						math.Cos(math.Pi*float64(u)*float64(2*x+1)/float64(2*size)) *
						math.Cos(math.Pi*float64(v)*float64(2*y+1)/float64(2*size))
				}
			}
			out[u*size+v] = scale(u) * scale(v) * sum
		}
	}
	return out
}

func randomBlock(r *rand.Rand, size int) []float64 {
	data := make([]float64, size*size)
	for i := range data {
		data[i] = float64(r.IntN(256))
	}
	return data
}

func TestDCT_Forward(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, size := range []int{2, 4, 8} {
		d := New(size)
		require.Equal(t, size, d.Size())
		for range 5 {
			data := randomBlock(r, size)
			exp := naive(size, data)
			got := d.Forward(data)
			require.Len(t, got, size*size)
			for i := range exp {
				assert.InDelta(t, exp[i], got[i], 1e-9, "size %d coefficient %d", size, i)
			}
		}
	}
}

func TestDCT_Constant(t *testing.T) {
	d := New(8)
	data := make([]float64, 64)
	for i := range data {
		data[i] = 128
	}
	got := d.Forward(data)
	assert.InDelta(t, 8*128.0, got[0], 1e-9)
	for i := 1; i < 64; i++ {
		assert.InDelta(t, 0, got[i], 1e-9)
	}
}

func TestDCT_Orientation(t *testing.T) {
	// samples vary along columns only: energy must sit in row 0 of the coefficients
	d := New(8)
	data := make([]float64, 64)
	for y := range 8 {
		for x := range 8 {
			data[y*8+x] = float64(x * 10)
		}
	}
	got := d.Forward(data)
	assert.Greater(t, math.Abs(got[1]), 1.0)
	for u := 1; u < 8; u++ {
		for v := range 8 {
			assert.InDelta(t, 0, got[u*8+v], 1e-9)
		}
	}
}

func TestDCT_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	d := New(8)
	for range 10 {
		data := randomBlock(r, 8)
		back := d.Inverse(d.Forward(data))
		for i := range data {
			assert.InDelta(t, data[i], back[i], 1e-9)
		}
	}
}

func TestDCT_Exec(t *testing.T) {
	d := New(8)
	data := randomBlock(rand.New(rand.NewPCG(5, 6)), 8)
	orig := append([]float64(nil), data...)

	coeffs, idct := d.Exec(data)
	coeffs[2*8+3] += 10
	coeffs[5*8+4] -= 10
	idct()

	assert.NotEqual(t, orig, data)
	again := d.Forward(data)
	assert.InDelta(t, coeffs[2*8+3], again[2*8+3], 1e-9)
	assert.InDelta(t, coeffs[5*8+4], again[5*8+4], 1e-9)
}
