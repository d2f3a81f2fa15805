package huff

import (
	"fmt"
)

const (
	headerInternal = 0
	headerLeaf     = 1
)

// HeaderSize returns the number of bits that WriteHeader emits for the tree
// rooted at root: one per internal node and 1+BitsPerSymbol per leaf.
func HeaderSize(root *Node) int {
	if root == nil {
		return 0
	}
	if root.IsLeaf() {
		return 1 + BitsPerSymbol
	}
	return 1 + HeaderSize(root.Left) + HeaderSize(root.Right)
}

// WriteHeader serializes the tree rooted at root in preorder.  An internal
// node is written as a 0 bit followed by its left and right subtrees; a leaf
// is written as a 1 bit followed by its Symbol in BitsPerSymbol bits.
//
// Returns ErrMalformedTree if root is nil, if any node has exactly one child,
// or if a leaf carries an invalid Symbol.
//
func WriteHeader(w BitWriter, root *Node) error {
	if root == nil {
		return fmt.Errorf("%w: nil tree", ErrMalformedTree)
	}
	if root.IsLeaf() {
		if !root.Symbol.IsValid() {
			return fmt.Errorf("%w: leaf with invalid symbol %d", ErrMalformedTree, root.Symbol)
		}
		if err := w.WriteBits(headerLeaf, 1); err != nil {
			return err
		}
		return w.WriteBits(uint64(root.Symbol), BitsPerSymbol)
	}
	if root.Left == nil || root.Right == nil {
		return fmt.Errorf("%w: internal node with one child", ErrMalformedTree)
	}
	if err := w.WriteBits(headerInternal, 1); err != nil {
		return err
	}
	if err := WriteHeader(w, root.Left); err != nil {
		return err
	}
	return WriteHeader(w, root.Right)
}

// ReadHeader reconstructs a tree written by WriteHeader.  It reads exactly
// the bits that WriteHeader wrote and no more.  Every Node of the result has
// weight 0.
//
// Returns an error wrapping ErrFormat if the source runs dry before the tree
// is complete, if a leaf's Symbol is greater than MaxSymbol, or if the tree is
// nested more than MaxCodeSize levels deep.
//
func ReadHeader(r BitReader) (*Node, error) {
	hr := headerReader{r: r}
	return hr.readNode(0)
}

type headerReader struct {
	r     BitReader
	nbits int
}

func (hr *headerReader) readBits(n uint8) (uint64, error) {
	u, err := hr.r.ReadBits(n)
	if err != nil {
		if isEndOfStream(err) {
			return 0, fmt.Errorf("%w: tree header ends after %d bits", ErrFormat, hr.nbits)
		}
		return 0, err
	}
	hr.nbits += int(n)
	return u, nil
}

func (hr *headerReader) readNode(depth int) (*Node, error) {
	bit, err := hr.readBits(1)
	if err != nil {
		return nil, err
	}

	if bit == headerLeaf {
		u, err := hr.readBits(BitsPerSymbol)
		if err != nil {
			return nil, err
		}
		symbol := Symbol(u)
		if !symbol.IsValid() {
			return nil, fmt.Errorf("%w: leaf symbol %d > %d at header bit %d", ErrFormat, u, MaxSymbol, hr.nbits-BitsPerSymbol)
		}
		return &Node{Symbol: symbol}, nil
	}

	if depth >= MaxCodeSize {
		return nil, fmt.Errorf("%w: tree header nested deeper than %d levels", ErrFormat, MaxCodeSize)
	}
	left, err := hr.readNode(depth + 1)
	if err != nil {
		return nil, err
	}
	right, err := hr.readNode(depth + 1)
	if err != nil {
		return nil, err
	}
	return &Node{Symbol: InvalidSymbol, Left: left, Right: right}, nil
}
