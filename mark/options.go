package mark

import (
	"github.com/yyyoichi/bitstream-go"
)

var (
	DefaultShuffleSeed int64 = 1234567890
)

type (
	// Option is a function for selecting the algorithm for mark generation.
	// It allows choosing whether to use error correction codes (ECC) and which type.
	Option      func(*markFactory)
	markFactory struct {
		f factory
	}
	factory interface {
		// encode returns the bits written to the image and their count.
		encode(data []uint64, size int) ([]uint64, int)
		// decode turns bits read from the image back into size payload bits.
		decode(bits []bool, size int) *bitstream.BitReader[uint64]
		encodedLen(size int) int
	}
)

// WithoutECC is an option that does not use error correction codes.
// The payload bits are written as-is, most significant bit of each byte first.
// This is the default.
func WithoutECC() Option {
	return func(mf *markFactory) {
		mf.f = withoutecc{}
	}
}

// WithGolay is an option that uses the extended Golay code for error correction.
// seed is the seed value for shuffling the encoded bits, so that a burst of
// damaged neighbouring slots is spread over several code words.
// Embedder and extractor must use the same seed.
func WithGolay(seed int64) Option {
	return func(mf *markFactory) {
		mf.f = shuffledgolay(seed)
	}
}

func newFactory(opts ...Option) markFactory {
	mf := markFactory{f: withoutecc{}}
	for _, opt := range opts {
		opt(&mf)
	}
	return mf
}
