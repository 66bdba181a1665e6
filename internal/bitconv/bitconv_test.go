package bitconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitConv(t *testing.T) {
	test := []struct {
		data []byte
		exp  []byte
	}{
		{data: []byte{0b10101010}, exp: []byte{0b10101010}},
		{data: []byte{0b11110000, 0b00001111}, exp: []byte{0b11110000, 0b00001111}},
		{data: []byte("Hello"), exp: []byte("Hello")},
		{data: []byte("こんにちは"), exp: []byte("こんにちは")},
		{data: []byte{}, exp: []byte{}},
	}
	for _, tt := range test {
		bits := BytesToBools(tt.data)
		assert.Len(t, bits, len(tt.data)*8)
		out := BoolsToBytes(bits)
		assert.Equal(t, tt.exp, out)
	}
}

func TestEncodeDecode(t *testing.T) {
	// 'A' = 0x41
	assert.Equal(t, []bool{false, true, false, false, false, false, false, true}, Encode("A"))
	assert.Equal(t, "AB", Decode(Encode("AB")))

	// trailing partial group is dropped
	bits := append(Encode("Hi"), true, false, true)
	assert.Equal(t, "Hi", Decode(bits))
	assert.Equal(t, "", Decode([]bool{true, true, true}))
}

func TestPreamble(t *testing.T) {
	p := Preamble()
	assert.Len(t, p, PreambleLen)

	var s []byte
	for _, b := range p {
		if b {
			s = append(s, '1')
		} else {
			s = append(s, '0')
		}
	}
	assert.Equal(t, "10101010110011001110001011110000", string(s))

	// callers get their own copy
	p[0] = !p[0]
	assert.True(t, Preamble()[0])
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, []bool{true, true, true, false, false, false}, Repeat([]bool{true, false}, 3))
	assert.Equal(t, []bool{true, false}, Repeat([]bool{true, false}, 1))
	assert.Empty(t, Repeat(nil, 3))
}

func TestMajorityVote(t *testing.T) {
	test := []struct {
		name string
		bits []bool
		k    int
		exp  []bool
	}{
		{"groups of three", []bool{true, true, false, false, false, true}, 3, []bool{true, false}},
		{"tie prefers first one", []bool{true, false}, 2, []bool{true}},
		{"tie prefers first zero", []bool{false, true}, 2, []bool{false}},
		{"trailing short group", []bool{true, true, true, false}, 3, []bool{true, false}},
		{"k of one", []bool{true, false, true}, 1, []bool{true, false, true}},
		{"empty", nil, 3, []bool{}},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.exp, MajorityVote(tt.bits, tt.k))
		})
	}
}

func TestMajority(t *testing.T) {
	assert.False(t, Majority(nil))
	assert.True(t, Majority([]bool{true, false, false, true}))
	assert.False(t, Majority([]bool{false, true, true, false}))
	assert.True(t, Majority([]bool{false, true, true}))

	// Repeat followed by MajorityVote is lossless
	src := Encode("watermark")
	assert.Equal(t, src, MajorityVote(Repeat(src, 5), 5))
}
