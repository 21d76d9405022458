package bitstream

import (
	"io"

	"github.com/icza/bitio"
)

// Reader reads bits from an io.Reader, most significant bit first.
type Reader struct {
	r *bitio.Reader
}

// NewReader returns a Reader that reads from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bitio.NewReader(r)}
}

// ReadBit reads the next bit.  It returns io.EOF at the end of the input.
func (r *Reader) ReadBit() (bool, error) {
	return r.r.ReadBool()
}

// ReadByte reads the next 8 bits, which need not be byte aligned.
func (r *Reader) ReadByte() (byte, error) {
	return r.r.ReadByte()
}

// Align discards the remaining bits of a partially read byte.
func (r *Reader) Align() {
	r.r.Align()
}

// Writer writes bits to an io.Writer, most significant bit first.  Full bytes
// are written as they fill up; Close pads the last byte with zero bits.
type Writer struct {
	w *bitio.Writer
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bitio.NewWriter(w)}
}

func (w *Writer) WriteBit(bit bool) error {
	return w.w.WriteBool(bit)
}

func (w *Writer) WriteByte(b byte) error {
	return w.w.WriteByte(b)
}

// Align pads the current byte with zero bits and returns how many were added.
func (w *Writer) Align() (byte, error) {
	return w.w.Align()
}

// Close pads and writes out any partial byte.  It does not close the
// underlying io.Writer.
func (w *Writer) Close() error {
	return w.w.Close()
}
