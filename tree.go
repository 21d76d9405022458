package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/sirupsen/logrus"
)

// Tree is a Huffman coding tree over the byte alphabet.
//
// The zero Tree is empty.  A Tree is populated by Init (from frequencies) or
// by Deserialize/UnmarshalBinary (from a serialized shape), and is read-only
// afterwards: any number of goroutines may call Encode on the same Tree.
type Tree struct {
	nodes     []node
	root      nodeID
	leaves    [NumSymbols]nodeID
	sizes     [NumSymbols]byte
	numLeaves int
	minSize   byte
	maxSize   byte
}

// NewTree is a convenience function that allocates a Tree and calls Init.
func NewTree(frequencies []uint64) (*Tree, error) {
	t := new(Tree)
	if err := t.Init(frequencies); err != nil {
		return nil, err
	}
	return t, nil
}

// Init builds this Tree from a frequency table.  frequencies[s] is the number
// of occurrences of symbol s; symbols past the end of the slice have a
// frequency of 0, and symbols with a frequency of 0 get no leaf.
//
// A table with no nonzero entries produces an empty Tree.  A table with
// exactly one nonzero entry produces a Tree whose root is that symbol's leaf,
// and whose only Code is the empty Code.
//
// When several nodes share a frequency, the leaf with the lower symbol, or
// else the older internal node, is merged first.  Any such choice yields
// an optimal code.
//
func (t *Tree) Init(frequencies []uint64) error {
	if len(frequencies) > NumSymbols {
		return fmt.Errorf("%w: got %d frequencies, max %d", ErrInvalidArgument, len(frequencies), NumSymbols)
	}

	var nt Tree
	h := nodeHeap{tree: &nt}

	for symbol, freq := range frequencies {
		if freq == 0 {
			continue
		}
		id := nt.newNode(node{
			freq:   freq,
			order:  leafOrder(byte(symbol)),
			symbol: byte(symbol),
		})
		nt.leaves[symbol] = id
		h.list = append(h.list, id)
	}
	nt.numLeaves = len(h.list)

	if nt.numLeaves == 0 {
		*t = Tree{}
		logger.Debug("huffman: built empty tree")
		return nil
	}

	h.Init()

	seq := 0
	for h.Len() > 1 {
		a := h.PopNode()
		b := h.PopNode()
		id := nt.newNode(node{
			freq:  saturatingAdd(nt.nodes[a].freq, nt.nodes[b].freq),
			order: internalOrder(seq),
		})
		nt.link(id, a, b)
		h.PushNode(id)
		seq++
	}

	nt.root = h.PopNode()
	assert.Assertf(seq == nt.numLeaves-1, "built %d internal nodes for %d leaves", seq, nt.numLeaves)
	nt.measure()

	*t = nt
	logger.WithFields(logrus.Fields{
		"symbols": t.numLeaves,
		"minSize": t.minSize,
		"maxSize": t.maxSize,
	}).Debug("huffman: built tree")
	return nil
}

// measure fills in sizes, minSize, and maxSize by walking the tree with an
// explicit stack.
func (t *Tree) measure() {
	type stackItem struct {
		id    nodeID
		depth int
	}

	t.sizes = [NumSymbols]byte{}
	t.minSize, t.maxSize = 0, 0
	if t.root == noNode {
		return
	}

	hasMinMax := false
	stack := make([]stackItem, 0, 16)
	stack = append(stack, stackItem{t.root, 0})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[top.id]
		if !n.isLeaf() {
			stack = append(stack, stackItem{n.right, top.depth + 1}, stackItem{n.left, top.depth + 1})
			continue
		}

		assert.Assertf(top.depth <= MaxCodeSize, "leaf %d at depth %d > %d", n.symbol, top.depth, MaxCodeSize)
		size := byte(top.depth)
		t.sizes[n.symbol] = size
		if !hasMinMax {
			hasMinMax = true
			t.minSize = size
			t.maxSize = size
		} else if t.minSize > size {
			t.minSize = size
		} else if t.maxSize < size {
			t.maxSize = size
		}
	}
}

// Len returns the number of symbols with a leaf in this Tree.
func (t *Tree) Len() int {
	return t.numLeaves
}

// IsEmpty reports whether this Tree has no root.
func (t *Tree) IsEmpty() bool {
	return t.root == noNode
}

// Has reports whether symbol has a leaf in this Tree.
func (t *Tree) Has(symbol byte) bool {
	return t.leaves[symbol] != noNode
}

// MinSize is the bit length of the shortest Code.
func (t *Tree) MinSize() byte {
	return t.minSize
}

// MaxSize is the bit length of the longest Code.
func (t *Tree) MaxSize() byte {
	return t.maxSize
}

// SizeBySymbol returns an array containing the Code length for each symbol.
// Symbols without a leaf, and the only symbol of a single-leaf Tree, have a
// length of 0; use Has to tell them apart.
func (t *Tree) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	copy(out, t.sizes[:])
	return out
}

// Dump writes a programmer-readable debugging dump of the Tree's current
// state to the given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", t.numLeaves)
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if !t.Has(byte(symbol)) {
			continue
		}
		hc, err := t.Encode(byte(symbol))
		assert.Assertf(err == nil, "Encode(%d) failed for a symbol with a leaf: %v", symbol, err)
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (t *Tree) DebugString() string {
	var sb strings.Builder
	_, _ = t.Dump(&sb)
	return sb.String()
}

// String returns a brief description of the Tree.
func (t *Tree) String() string {
	if t.IsEmpty() {
		return "(empty Huffman tree)"
	}
	return fmt.Sprintf("(Huffman tree with %d symbols, with coded lengths of %d .. %d bits)", t.numLeaves, t.minSize, t.maxSize)
}

var _ fmt.Stringer = (*Tree)(nil)
