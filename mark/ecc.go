package mark

import (
	"math/rand/v2"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"
)

var _ factory = (*shuffledgolay)(nil)

type shuffledgolay int64

func (sg shuffledgolay) encode(data []uint64, size int) ([]uint64, int) {
	if size == 0 {
		return nil, 0
	}
	if size > len(data)*64 {
		panic("size exceeds data length")
	}
	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	_ = enc.Encode(data, size)
	n := enc.Bits()

	perm := sg.permutation(n)
	r := bitstream.NewBitReader(encoded, 0, 0)
	w := bitstream.NewBitWriter[uint64](0, 0)
	for i := range n {
		bit, _ := r.ReadBitAt(perm[i])
		w.WriteBitAt(i, bit)
	}
	return w.Data(), n
}

func (sg shuffledgolay) decode(bits []bool, size int) *bitstream.BitReader[uint64] {
	if size == 0 || len(bits) == 0 {
		r := bitstream.NewBitReader([]uint64{}, 0, 0)
		r.SetBits(0)
		return r
	}
	perm := sg.permutation(len(bits))
	w := bitstream.NewBitWriter[uint64](0, 0)
	for i, bit := range bits {
		w.WriteBitAt(perm[i], bit)
	}

	var decoded []uint64
	dec := golay.NewDecoder(w.Data(), w.Bits())
	_ = dec.Decode(&decoded)

	r := bitstream.NewBitReader(decoded, 0, 0)
	r.SetBits(min(size, len(decoded)*64))
	return r
}

func (sg shuffledgolay) encodedLen(size int) int {
	return golay.EncodedBits(size)
}

// permutation returns a deterministic shuffle of [0, n) for the seed.
func (sg shuffledgolay) permutation(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	rd := rand.New(rand.NewPCG(uint64(sg), uint64(n)))
	rd.Shuffle(n, func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return perm
}

var _ factory = (*withoutecc)(nil)

type withoutecc struct{}

func (withoutecc) encode(data []uint64, size int) ([]uint64, int) {
	return data, size
}

func (withoutecc) decode(bits []bool, size int) *bitstream.BitReader[uint64] {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range bits {
		w.WriteBool(v)
	}
	r := bitstream.NewBitReader(w.Data(), 0, 0)
	r.SetBits(min(size, len(bits)))
	return r
}

func (withoutecc) encodedLen(size int) int {
	return size
}
