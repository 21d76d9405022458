package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/hctree/bitstream"
)

// Decode reads one codeword from r and returns its symbol.
//
// Decode starts at the root and reads one bit per internal node, taking the
// "0" or "1" branch, until it reaches a leaf.  A single-leaf Tree returns its
// symbol without reading anything.  If r runs out of bits partway down, the
// error wraps ErrSourceExhausted as well as r's own error.
//
// Each call consumes bits from r, so concurrent callers must not share one r.
//
func (t *Tree) Decode(r BitReader) (byte, error) {
	if t.root == noNode {
		return 0, fmt.Errorf("%w: cannot decode", ErrEmptyTree)
	}

	id := t.root
	for {
		n := &t.nodes[id]
		if n.isLeaf() {
			return n.symbol, nil
		}
		bit, err := r.ReadBit()
		if err != nil {
			return 0, readError("decode", err)
		}
		if bit {
			id = n.right
		} else {
			id = n.left
		}
	}
}

// DecodeCode returns the symbol whose Code is exactly hc.  A Code that ends
// before reaching a leaf is reported as ErrSourceExhausted; one with bits
// left over after reaching a leaf is reported as ErrCorrupt.
func (t *Tree) DecodeCode(hc Code) (byte, error) {
	var src bitstream.Bits
	for i := 0; i < int(hc.Size); i++ {
		_ = src.WriteBit(hc.Bit(i))
	}
	symbol, err := t.Decode(&src)
	if err != nil {
		return 0, err
	}
	if n := src.Len(); n != 0 {
		return 0, fmt.Errorf("%w: code %s has %d bits past the leaf for symbol %d", ErrCorrupt, hc, n, symbol)
	}
	return symbol, nil
}
