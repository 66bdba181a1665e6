package mark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(m *Mark) []bool {
	bits := make([]bool, m.Len())
	for i := range bits {
		bits[i] = m.GetBit(i)
	}
	return bits
}

func TestShuffledGolay(t *testing.T) {
	var sg shuffledgolay = 12345
	t.Run("encode length", func(t *testing.T) {
		for v := range 64 * 4 {
			_, l := sg.encode([]uint64{1, 2, 3, 4}, v)
			assert.Equal(t, sg.encodedLen(v), l, "size %d", v)
		}
		assert.Panics(t, func() { sg.encode([]uint64{1, 2, 3, 4}, 64*4+1) })
	})

	t.Run("encode/decode", func(t *testing.T) {
		m := New([]uint64{0x1234567890abcdef, 0xfedcba0987654321}, 128, WithGolay(12345))
		bits := readAll(m)
		require.Len(t, bits, golayLen(128))

		reader := sg.decode(bits, 128)
		assert.Equal(t, 128, reader.Bits())
		assert.Equal(t, uint64(0x1234567890abcdef), reader.Read64R(64, 0))
		assert.Equal(t, uint64(0xfedcba0987654321), reader.Read64R(64, 1))
	})

	t.Run("corrects flipped bits", func(t *testing.T) {
		m := NewString("golay", WithGolay(DefaultShuffleSeed))
		bits := readAll(m)
		// three errors fit the correction radius of a single code word
		for _, i := range []int{0, len(bits) / 3, len(bits) - 1} {
			bits[i] = !bits[i]
		}
		assert.Equal(t, "golay", m.NewDecoder(bits).DecodeToString())
	})

	t.Run("permutation", func(t *testing.T) {
		a := sg.permutation(48)
		assert.Equal(t, a, sg.permutation(48))
		assert.ElementsMatch(t, a, shuffledgolay(0).permutation(48))
		assert.NotEqual(t, a, shuffledgolay(1).permutation(48))
	})
}

func golayLen(size int) int {
	return shuffledgolay(0).encodedLen(size)
}

func TestWithoutECC(t *testing.T) {
	var we withoutecc
	data, n := we.encode([]uint64{42}, 7)
	assert.Equal(t, []uint64{42}, data)
	assert.Equal(t, 7, n)
	assert.Equal(t, 7, we.encodedLen(7))

	r := we.decode([]bool{true, false, true}, 3)
	assert.Equal(t, 3, r.Bits())
	for i, exp := range []bool{true, false, true} {
		got, err := r.ReadBitAt(i)
		require.NoError(t, err)
		assert.Equal(t, exp, got)
	}
}
