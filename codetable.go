package huff

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each Symbol present in a tree to its code: the path from
// the root to the Symbol's leaf, with 0 for left and 1 for right.  Because
// every code is a root-to-leaf path in one tree, no code is a prefix of
// another.
type CodeTable struct {
	codes   [AlphabetSize]Code
	present [AlphabetSize]bool
	count   int
	minSize int
	maxSize int
}

// MakeCodeTable walks the tree rooted at root and records the code of every
// leaf.  A root that is itself a leaf receives the empty code.  The missing
// side of a Node with one child is skipped.  If the same Symbol labels more
// than one leaf, the rightmost leaf wins.  The tree must be no deeper than
// MaxCodeSize.
func MakeCodeTable(root *Node) CodeTable {
	var t CodeTable
	t.walk(root, Code{})
	return t
}

func (t *CodeTable) walk(n *Node, path Code) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		t.record(n.Symbol, path)
		return
	}
	t.walk(n.Left, path.Append(0))
	t.walk(n.Right, path.Append(1))
}

func (t *CodeTable) record(symbol Symbol, hc Code) {
	if !symbol.IsValid() {
		return
	}
	if !t.present[symbol] {
		t.present[symbol] = true
		t.count++
	}
	t.codes[symbol] = hc

	size := hc.Len()
	if t.count == 1 {
		t.minSize, t.maxSize = size, size
	} else if t.minSize > size {
		t.minSize = size
	} else if t.maxSize < size {
		t.maxSize = size
	}
}

// Lookup returns the code for symbol, and whether symbol has one.
func (t *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	if !symbol.IsValid() || !t.present[symbol] {
		return Code{}, false
	}
	return t.codes[symbol], true
}

// Len returns the number of symbols with a code.
func (t *CodeTable) Len() int {
	return t.count
}

// MinSize is the bit length of the shortest code.
func (t *CodeTable) MinSize() int {
	return t.minSize
}

// MaxSize is the bit length of the longest code.
func (t *CodeTable) MaxSize() int {
	return t.maxSize
}

// EncodedSize returns the number of payload bits needed to encode a stream
// with the given frequencies, PseudoEOF included.  Symbols without a code
// contribute nothing.
func (t *CodeTable) EncodedSize(freq *FrequencyTable) uint64 {
	var total uint64
	for symbol, count := range freq {
		if t.present[symbol] {
			total = addSaturating(total, count*uint64(t.codes[symbol].Len()))
		}
	}
	return total
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.  Symbols without a code are omitted.
func (t *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if !t.present[symbol] {
			continue
		}
		fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", symbol, t.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
