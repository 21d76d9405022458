package bitstream

import (
	"fmt"
	"io"
	"strings"
)

// Bits is an in-memory FIFO of bits.  Writes append to the end and reads
// consume from the front.  The zero Bits is empty and ready to use.
type Bits struct {
	bits []bool
	pos  int
}

// ParseBits returns a Bits holding the bits spelled out by str, which may
// contain only '0', '1', and spaces.  Spaces are ignored.
func ParseBits(str string) (*Bits, error) {
	b := new(Bits)
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			b.bits = append(b.bits, false)
		case '1':
			b.bits = append(b.bits, true)
		case ' ':
		default:
			return nil, fmt.Errorf("bitstream: invalid character %q in %q", str[i], str)
		}
	}
	return b, nil
}

// Len returns the number of unread bits.
func (b *Bits) Len() int {
	return len(b.bits) - b.pos
}

func (b *Bits) WriteBit(bit bool) error {
	b.bits = append(b.bits, bit)
	return nil
}

// WriteByte appends the 8 bits of v, most significant bit first.
func (b *Bits) WriteByte(v byte) error {
	for i := 7; i >= 0; i-- {
		b.bits = append(b.bits, (v>>uint(i))&1 != 0)
	}
	return nil
}

// ReadBit returns io.EOF once every bit has been read.
func (b *Bits) ReadBit() (bool, error) {
	if b.pos >= len(b.bits) {
		return false, io.EOF
	}
	bit := b.bits[b.pos]
	b.pos++
	return bit, nil
}

// ReadByte returns io.EOF if no bits are left, or io.ErrUnexpectedEOF if
// fewer than 8 are.  Nothing is consumed on error.
func (b *Bits) ReadByte() (byte, error) {
	switch n := b.Len(); {
	case n == 0:
		return 0, io.EOF
	case n < 8:
		return 0, io.ErrUnexpectedEOF
	}
	var v byte
	for _, bit := range b.bits[b.pos : b.pos+8] {
		v <<= 1
		if bit {
			v |= 1
		}
	}
	b.pos += 8
	return v, nil
}

// String returns the unread bits as a string of '0' and '1' characters.
func (b *Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.Len())
	for _, bit := range b.bits[b.pos:] {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

var _ fmt.Stringer = (*Bits)(nil)
