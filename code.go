package huffman

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

const codeWords = (MaxCodeSize + 63) / 64

// Code represents a codeword: a sequence of bits read from the root of a
// Tree down to one of its leaves.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits[0] is the first bit, and bit i lives at Bits[i/64] >> (i%64).
	Bits [codeWords]uint64
}

// MakeCode is a convenience function that constructs a Code of up to 64 bits.
// The least significant bit of bits is the first bit.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= 64, "MakeCode: size %d > 64", size)
	if size < 64 {
		bits &= (uint64(1) << size) - 1
	}
	var hc Code
	hc.Size = size
	hc.Bits[0] = bits
	return hc
}

// ParseCode constructs a Code from a string of '0' and '1' characters, first
// bit first.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("%w: code %q is longer than %d bits", ErrInvalidArgument, str, MaxCodeSize)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc.push(false)
		case '1':
			hc.push(true)
		default:
			return Code{}, fmt.Errorf("%w: invalid character %q in code %q", ErrInvalidArgument, str[i], str)
		}
	}
	return hc, nil
}

// Bit returns the i'th bit of the Code.
func (hc Code) Bit(i int) bool {
	assert.Assertf(i >= 0 && i < int(hc.Size), "Code.Bit: index %d out of range [0, %d)", i, hc.Size)
	return (hc.Bits[i/64]>>(uint(i)%64))&1 != 0
}

// Reversed returns the corresponding Code with the bits in reverse order.
func (hc Code) Reversed() Code {
	var out Code
	for i := int(hc.Size) - 1; i >= 0; i-- {
		out.push(hc.Bit(i))
	}
	return out
}

// HasPrefix reports whether prefix is a prefix of this Code.  Every Code,
// including the empty Code, is a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := 0; i < int(prefix.Size); i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code, first bit first.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := 0; i < int(hc.Size); i++ {
		if hc.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Code{}

// push appends one bit to the end of the Code.
func (hc *Code) push(bit bool) {
	assert.Assertf(hc.Size < MaxCodeSize, "Code.push: code already holds %d bits", hc.Size)
	if bit {
		i := uint(hc.Size)
		hc.Bits[i/64] |= uint64(1) << (i % 64)
	}
	hc.Size++
}
