package huffman

// nodeID is an index into Tree.nodes.  The zero nodeID means "no node", so
// that the zero Tree is a valid empty tree.
type nodeID int32

const noNode nodeID = 0

// node is one cell of a Tree.
//
// Children are owned by their parent through the Tree's arena.  The parent
// link is a plain index used only to walk upward when deriving a codeword.
type node struct {
	// freq is the symbol's frequency on a leaf, or the saturating sum of
	// its subtree's leaf frequencies on an internal node.  It is not
	// restored by Deserialize.
	freq uint64

	// order breaks ties between equal frequencies.  See compareNodes.
	order uint32

	symbol byte

	left   nodeID // the "0" branch
	right  nodeID // the "1" branch
	parent nodeID
}

func (n *node) isLeaf() bool {
	return n.left == noNode
}

// leafOrder and internalOrder compute node.order.  Leaves sort by symbol;
// internal nodes sort after every leaf, in creation order.
func leafOrder(symbol byte) uint32 {
	return uint32(symbol)
}

func internalOrder(seq int) uint32 {
	return uint32(NumSymbols + seq)
}

// newNode appends n to the arena and returns its ID.
func (t *Tree) newNode(n node) nodeID {
	if len(t.nodes) == 0 {
		// slot 0 backs noNode
		t.nodes = append(t.nodes, node{})
	}
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return id
}

// link makes a and b the "0" and "1" children of parent.
func (t *Tree) link(parent, a, b nodeID) {
	p := &t.nodes[parent]
	p.left = a
	p.right = b
	t.nodes[a].parent = parent
	t.nodes[b].parent = parent
}
