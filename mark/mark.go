package mark

import (
	"github.com/yyyoichi/bitstream-go"
	watermark "github.com/yyyoichi/watermark_dihedral"
	"github.com/yyyoichi/watermark_dihedral/internal/bitconv"
)

var _ watermark.EmbedMark = (*Mark)(nil)
var _ watermark.ExtractMark = (*Mark)(nil)
var _ watermark.MarkDecoder = (*Decoded)(nil)

// Mark holds the bits of a payload as they are written into an image.
// The same value serves as an ExtractMark for payloads of its size.
type Mark struct {
	size   int
	reader *bitstream.BitReader[uint64]
	mf     markFactory
}

// New initializes a mark from the first size bits of data.
// By default the bits are written without error correction; see WithGolay.
func New(data []uint64, size int, opts ...Option) *Mark {
	mf := newFactory(opts...)
	size = min(size, len(data)*64)
	encoded, n := mf.f.encode(data, size)
	reader := bitstream.NewBitReader(encoded, 0, 0)
	reader.SetBits(n)
	return &Mark{
		size:   size,
		reader: reader,
		mf:     mf,
	}
}

// NewString initializes a mark from the UTF-8 bytes of data.
func NewString(data string, opts ...Option) *Mark {
	return NewBytes([]byte(data), opts...)
}

// NewBytes initializes a mark from data, each byte most significant bit first.
func NewBytes(data []byte, opts ...Option) *Mark {
	return NewBools(bitconv.BytesToBools(data), opts...)
}

// NewBools initializes a mark with one payload bit per element of data.
func NewBools(data []bool, opts ...Option) *Mark {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range data {
		w.WriteBool(v)
	}
	return New(w.Data(), len(data), opts...)
}

// NewExtract returns a mark that only decodes: size is the payload length in
// bits and opts must match those used when embedding.
func NewExtract(size int, opts ...Option) *Mark {
	return &Mark{
		size: size,
		mf:   newFactory(opts...),
	}
}

// GetBit returns the encoded bit at position at.
// Positions outside the mark read as false.
func (m *Mark) GetBit(at int) bool {
	if m.reader == nil || at < 0 || at >= m.Len() {
		return false
	}
	bit, _ := m.reader.ReadBitAt(at)
	return bit
}

// Len returns the number of encoded bits written into the image.
func (m *Mark) Len() int {
	return m.mf.f.encodedLen(m.size)
}

// ExtractSize returns the number of payload bits.
func (m *Mark) ExtractSize() int {
	return m.size
}

// NewDecoder decodes bits read from an image. Missing bits read as false
// and surplus bits are ignored.
func (m *Mark) NewDecoder(bits []bool) watermark.MarkDecoder {
	encoded := make([]bool, m.Len())
	copy(encoded, bits)
	return &Decoded{
		size:   m.size,
		reader: m.mf.f.decode(encoded, m.size),
	}
}

// Decoded is a payload recovered from an image.
type Decoded struct {
	size   int
	reader *bitstream.BitReader[uint64]
}

// DecodeToBools returns every payload bit.
func (d *Decoded) DecodeToBools() []bool {
	data := make([]bool, d.size)
	for i := range min(d.size, d.reader.Bits()) {
		data[i], _ = d.reader.ReadBitAt(i)
	}
	return data
}

// DecodeToBytes packs the payload into bytes. A trailing group of fewer than
// eight bits is dropped.
func (d *Decoded) DecodeToBytes() []byte {
	return bitconv.BoolsToBytes(d.DecodeToBools())
}

func (d *Decoded) DecodeToString() string {
	return string(d.DecodeToBytes())
}
