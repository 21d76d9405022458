package huffman

import (
	"bytes"
	"encoding"
	"fmt"

	"github.com/chronos-tachyon/assert"
	"github.com/sirupsen/logrus"

	"github.com/chronos-tachyon/hctree/bitstream"
)

// Serialize writes the shape of this Tree to w in preorder.  A leaf is
// written as a 1 bit followed by its symbol as a byte; an internal node is
// written as a 0 bit followed by its "0" subtree and then its "1" subtree.
//
// Frequencies are not written.  The stream has no length prefix or
// terminator, and an empty Tree writes nothing at all: callers must record
// emptiness (and the end of the stream, if needed) some other way.
//
func (t *Tree) Serialize(w BitWriter) error {
	if t.root == noNode {
		return nil
	}

	stack := make([]nodeID, 0, 16)
	stack = append(stack, t.root)
	for len(stack) != 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[id]
		if n.isLeaf() {
			if err := w.WriteBit(true); err != nil {
				return writeError("serialize", err)
			}
			if err := w.WriteByte(n.symbol); err != nil {
				return writeError("serialize", err)
			}
			continue
		}

		if err := w.WriteBit(false); err != nil {
			return writeError("serialize", err)
		}
		stack = append(stack, n.right, n.left)
	}
	return nil
}

// SerializedSize returns the number of bits Serialize writes: 9 per leaf
// plus 1 per internal node.
func (t *Tree) SerializedSize() int {
	if t.root == noNode {
		return 0
	}
	return 10*t.numLeaves - 1
}

// Deserialize replaces the contents of this Tree with a shape read from r,
// as written by Serialize.  Exactly one tree's worth of bits is consumed.
//
// Node frequencies are not restored.  A shape that repeats a symbol, or that
// has more internal nodes than any tree over NumSymbols leaves, is rejected
// with ErrCorrupt.  On any error the Tree is left unchanged.
//
func (t *Tree) Deserialize(r BitReader) error {
	var nt Tree

	// stack holds the internal nodes that are still missing a child.
	stack := make([]nodeID, 0, 16)
	seq := 0

	for {
		isLeaf, err := r.ReadBit()
		if err != nil {
			return readError("deserialize", err)
		}

		var id nodeID
		if isLeaf {
			symbol, err := r.ReadByte()
			if err != nil {
				return readError("deserialize", err)
			}
			if nt.leaves[symbol] != noNode {
				return fmt.Errorf("%w: symbol %d appears twice in tree shape", ErrCorrupt, symbol)
			}
			id = nt.newNode(node{order: leafOrder(symbol), symbol: symbol})
			nt.leaves[symbol] = id
			nt.numLeaves++
		} else {
			if seq >= maxInternalNodes {
				return fmt.Errorf("%w: tree shape has more than %d internal nodes", ErrCorrupt, maxInternalNodes)
			}
			id = nt.newNode(node{order: internalOrder(seq)})
			seq++
		}

		if len(stack) == 0 {
			nt.root = id
		} else {
			parent := &nt.nodes[stack[len(stack)-1]]
			if parent.left == noNode {
				parent.left = id
			} else {
				parent.right = id
			}
			nt.nodes[id].parent = stack[len(stack)-1]
		}

		if !isLeaf {
			stack = append(stack, id)
			continue
		}

		for len(stack) != 0 && nt.nodes[stack[len(stack)-1]].right != noNode {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			break
		}
	}

	assert.Assertf(seq == nt.numLeaves-1, "read %d internal nodes for %d leaves", seq, nt.numLeaves)
	nt.measure()

	*t = nt
	logger.WithFields(logrus.Fields{
		"symbols": t.numLeaves,
		"minSize": t.minSize,
		"maxSize": t.maxSize,
	}).Debug("huffman: deserialized tree")
	return nil
}

// MarshalBinary returns the Serialize form of this Tree packed into bytes,
// most significant bit first, with the last byte padded with zero bits.  An
// empty Tree marshals to an empty slice.
func (t *Tree) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)
	if err := t.Serialize(w); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, writeError("marshal", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary replaces the contents of this Tree with the output of
// MarshalBinary.  Bytes beyond the one holding the tree's last bit are
// rejected with ErrCorrupt.
func (t *Tree) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		*t = Tree{}
		return nil
	}

	var nt Tree
	r := bitstream.NewReader(bytes.NewReader(data))
	if err := nt.Deserialize(r); err != nil {
		return err
	}
	if expect := (nt.SerializedSize() + 7) / 8; len(data) != expect {
		return fmt.Errorf("%w: tree shape takes %d bytes, got %d", ErrCorrupt, expect, len(data))
	}
	*t = nt
	return nil
}

var (
	_ encoding.BinaryMarshaler   = (*Tree)(nil)
	_ encoding.BinaryUnmarshaler = (*Tree)(nil)
)
