package huffman

// BitReader is the bit-level input half of the stream collaborator.
//
// ReadBit returns the next bit.  ReadByte returns the next 8 bits as a byte,
// with no alignment requirement.  At the end of the data, both return io.EOF
// (or io.ErrUnexpectedEOF for a partial byte).
type BitReader interface {
	ReadBit() (bool, error)
	ReadByte() (byte, error)
}

// BitWriter is the bit-level output half of the stream collaborator.
//
// Bit order and any padding at the end of the stream are defined by the
// implementation, but a sequence of WriteBit/WriteByte calls must be read back
// by the matching sequence of ReadBit/ReadByte calls.
type BitWriter interface {
	WriteBit(bit bool) error
	WriteByte(b byte) error
}
