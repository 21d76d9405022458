package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Encode returns the Code for symbol.
//
// The Code is found by walking from the symbol's leaf up to the root, noting
// at each step whether the node is the "0" or "1" child of its parent, and
// then reversing the result so that it reads root to leaf.  The only symbol of
// a single-leaf Tree encodes to the empty Code.
//
func (t *Tree) Encode(symbol byte) (Code, error) {
	if t.root == noNode {
		return Code{}, fmt.Errorf("%w: cannot encode symbol %d", ErrEmptyTree, symbol)
	}
	id := t.leaves[symbol]
	if id == noNode {
		return Code{}, fmt.Errorf("%w: symbol %d has no leaf", ErrNotFound, symbol)
	}

	var reversed Code
	for id != t.root {
		parent := t.nodes[id].parent
		reversed.push(t.nodes[parent].right == id)
		id = parent
	}
	return reversed.Reversed(), nil
}

// EncodeTo writes the Code for symbol to w, one bit at a time.
func (t *Tree) EncodeTo(w BitWriter, symbol byte) error {
	hc, err := t.Encode(symbol)
	if err != nil {
		return err
	}
	for i := 0; i < int(hc.Size); i++ {
		if err := w.WriteBit(hc.Bit(i)); err != nil {
			return writeError(fmt.Sprintf("encode symbol %d", symbol), err)
		}
	}
	return nil
}

// Codes returns the Code for every symbol in this Tree, keyed by symbol.
func (t *Tree) Codes() map[byte]Code {
	out := make(map[byte]Code, t.numLeaves)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if !t.Has(byte(symbol)) {
			continue
		}
		hc, err := t.Encode(byte(symbol))
		assert.Assertf(err == nil, "Encode(%d) failed for a symbol with a leaf: %v", symbol, err)
		out[byte(symbol)] = hc
	}
	return out
}
