package watermark

type MarkCore interface {
	// Len is the number of bits written after the preamble.
	Len() int
	// ExtractSize is the number of payload bits Len encodes.
	ExtractSize() int
}

type EmbedMark interface {
	GetBit(at int) bool
	MarkCore
}

type ExtractMark interface {
	NewDecoder([]bool) MarkDecoder
	MarkCore
}

type MarkDecoder interface {
	DecodeToBytes() []byte
	DecodeToString() string
	DecodeToBools() []bool
}
