package huff

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
)

// Node is one node of a Huffman tree.  A Node with no children is a leaf and
// carries a Symbol; any other Node is internal and its Symbol is unused.
//
// Trees are never modified once built.  A tree built by BuildTree or read by
// ReadHeader never contains a Node with exactly one child, but MakeCodeTable
// and Decoder tolerate such trees when they are constructed by hand.
//
type Node struct {
	// Weight is the count of a leaf, or the sum of the weights of an
	// internal node's children.  Trees read from a header have weight 0.
	Weight uint64

	// Symbol is the symbol of a leaf.
	Symbol Symbol

	Left  *Node
	Right *Node
}

// NewLeaf constructs a leaf Node.
func NewLeaf(symbol Symbol, weight uint64) *Node {
	return &Node{Weight: weight, Symbol: symbol}
}

// NewInternal constructs an internal Node that owns left and right.
func NewInternal(left, right *Node) *Node {
	n := &Node{Symbol: InvalidSymbol, Left: left, Right: right}
	if left != nil {
		n.Weight = addSaturating(n.Weight, left.Weight)
	}
	if right != nil {
		n.Weight = addSaturating(n.Weight, right.Weight)
	}
	return n
}

// IsLeaf returns true iff this Node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Leaves returns the number of leaves in the tree rooted at this Node.
func (n *Node) Leaves() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	return n.Left.Leaves() + n.Right.Leaves()
}

// Depth returns the number of edges on the longest path from this Node down
// to a leaf.
func (n *Node) Depth() int {
	if n == nil || n.IsLeaf() {
		return 0
	}
	return 1 + max(n.Left.Depth(), n.Right.Depth())
}

// Dump writes a programmer-readable debugging dump of the tree rooted at this
// Node to the given writer, one Node per line in preorder.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	n.dumpTo(&buf, 1)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (n *Node) dumpTo(buf *bytes.Buffer, depth int) {
	if n == nil {
		return
	}
	for i := 0; i < depth; i++ {
		buf.WriteByte('\t')
	}
	if n.IsLeaf() {
		fmt.Fprintf(buf, "%v = %d\n", n.Symbol, n.Weight)
		return
	}
	fmt.Fprintf(buf, "* = %d\n", n.Weight)
	n.Left.dumpTo(buf, depth+1)
	n.Right.dumpTo(buf, depth+1)
}

// BuildTree constructs a Huffman tree from a FrequencyTable.  Only symbols
// with a positive count become leaves.
//
// The two lightest nodes are repeatedly merged into a new internal node,
// the first one removed becoming its left child.  Ties on weight go to the
// node that entered the queue first: leaves enter in ascending Symbol order,
// and each merged node enters after every node before it.  This makes the
// output of the encoder a pure function of its input.
//
// Returns ErrEmptyAlphabet if no symbol has a positive count.
//
func BuildTree(freq *FrequencyTable) (*Node, error) {
	h := nodeHeap{list: make([]seqNode, 0, AlphabetSize)}
	var seq uint32
	for symbol, count := range freq {
		if count == 0 {
			continue
		}
		h.list = append(h.list, seqNode{NewLeaf(Symbol(symbol), count), seq})
		seq++
	}
	if len(h.list) == 0 {
		return nil, ErrEmptyAlphabet
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(seqNode)
		b := heap.Pop(&h).(seqNode)
		heap.Push(&h, seqNode{NewInternal(a.node, b.node), seq})
		seq++
	}

	return heap.Pop(&h).(seqNode).node, nil
}

// type seqNode + type nodeHeap {{{

type seqNode struct {
	node *Node
	seq  uint32
}

type nodeHeap struct {
	list []seqNode
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(seqNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = seqNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
