package bitconv

// PreambleLen is the number of bits returned by Preamble.
const PreambleLen = 32

// preamble alternates short and long runs so that a mirrored or rotated read
// of the carrier does not reproduce it.
const preamble = "10101010110011001110001011110000"

// Preamble returns a fresh copy of the synchronization pattern that prefixes
// every embedded frame.
func Preamble() []bool {
	bits := make([]bool, PreambleLen)
	for i := range preamble {
		bits[i] = preamble[i] == '1'
	}
	return bits
}

// Encode converts text into bits, 8 bits per byte, most significant bit first.
func Encode(text string) []bool {
	return BytesToBools([]byte(text))
}

// Decode converts bits back into text. A trailing group shorter than 8 bits is dropped.
func Decode(bits []bool) string {
	return string(BoolsToBytes(bits))
}

func BytesToBools(b []byte) []bool {
	bits := make([]bool, 0, len(b)*8)
	for _, bb := range b {
		for i := 7; i >= 0; i-- {
			bits = append(bits, ((bb>>uint(i))&1) == 1)
		}
	}
	return bits
}

func BoolsToBytes(bits []bool) []byte {
	out := make([]byte, len(bits)/8)
	for i := range out {
		var v byte
		for j := range 8 {
			if bits[i*8+j] {
				v |= 1 << uint(7-j)
			}
		}
		out[i] = v
	}
	return out
}

// Repeat replicates every bit k times contiguously.
func Repeat(bits []bool, k int) []bool {
	if k < 1 {
		k = 1
	}
	out := make([]bool, 0, len(bits)*k)
	for _, b := range bits {
		for range k {
			out = append(out, b)
		}
	}
	return out
}

// MajorityVote collapses consecutive groups of k bits into one bit each.
// A trailing group shorter than k is voted on as it is.
func MajorityVote(bits []bool, k int) []bool {
	if k < 1 {
		k = 1
	}
	out := make([]bool, 0, (len(bits)+k-1)/k)
	for i := 0; i < len(bits); i += k {
		out = append(out, Majority(bits[i:min(i+k, len(bits))]))
	}
	return out
}

// Majority returns the value occurring most often in votes.
// On a tie the value of votes[0] wins; an empty slice yields false.
func Majority(votes []bool) bool {
	if len(votes) == 0 {
		return false
	}
	var ones int
	for _, v := range votes {
		if v {
			ones++
		}
	}
	zeros := len(votes) - ones
	if ones == zeros {
		return votes[0]
	}
	return ones > zeros
}
