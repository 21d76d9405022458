package huffman

import (
	"container/heap"
)

// compareNodes orders nodes for tree construction: lower frequency first,
// then lower order key.  Leaves get their symbol as order key and internal
// nodes get NumSymbols plus their creation sequence number, so every node in
// a Tree has a distinct key and the result is 0 only when a and b carry the
// same frequency and key.
func compareNodes(a, b *node) int {
	switch {
	case a.freq < b.freq:
		return -1
	case a.freq > b.freq:
		return 1
	case a.order < b.order:
		return -1
	case a.order > b.order:
		return 1
	default:
		return 0
	}
}

// type nodeHeap {{{

// nodeHeap is a min-heap of node IDs in the arena of tree.
type nodeHeap struct {
	tree *Tree
	list []nodeID
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) PushNode(id nodeID) {
	heap.Push(h, id)
}

func (h *nodeHeap) PopNode() nodeID {
	return heap.Pop(h).(nodeID)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a := &h.tree.nodes[h.list[i]]
	b := &h.tree.nodes[h.list[j]]
	return compareNodes(a, b) < 0
}

func (h *nodeHeap) Push(x any) {
	h.list = append(h.list, x.(nodeID))
}

func (h *nodeHeap) Pop() any {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
