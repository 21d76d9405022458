package bitstream

import (
	"io"

	gobitstream "github.com/dgryski/go-bitstream"
)

// StreamReader reads bits from an io.Reader using go-bitstream.
type StreamReader struct {
	r *gobitstream.BitReader
}

// NewStreamReader returns a StreamReader that reads from r.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{r: gobitstream.NewReader(r)}
}

func (r *StreamReader) ReadBit() (bool, error) {
	bit, err := r.r.ReadBit()
	return bool(bit), err
}

func (r *StreamReader) ReadByte() (byte, error) {
	return r.r.ReadByte()
}

// StreamWriter writes bits to an io.Writer using go-bitstream.  Flush must
// be called to write out a partial last byte.
type StreamWriter struct {
	w *gobitstream.BitWriter
}

// NewStreamWriter returns a StreamWriter that writes to w.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: gobitstream.NewWriter(w)}
}

func (w *StreamWriter) WriteBit(bit bool) error {
	return w.w.WriteBit(gobitstream.Bit(bit))
}

func (w *StreamWriter) WriteByte(b byte) error {
	return w.w.WriteByte(b)
}

// Flush pads the last byte with zero bits and writes it out.
func (w *StreamWriter) Flush() error {
	return w.w.Flush(gobitstream.Zero)
}
