package huff

import "errors"

// Package errors.  Callers match them with errors.Is; the codec wraps them
// with fmt.Errorf when a position or value is worth reporting.
var (
	// ErrFormat reports a bad magic number or a malformed tree header.
	ErrFormat = errors.New("huff: invalid compressed format")

	// ErrTruncatedInput reports a payload that ends before the PseudoEOF
	// code.
	ErrTruncatedInput = errors.New("huff: truncated input: no end-of-stream code")

	// ErrEmptyAlphabet reports a FrequencyTable with no positive counts.
	ErrEmptyAlphabet = errors.New("huff: no symbols with a positive count")

	// ErrMalformedTree reports a tree that cannot be serialized, i.e. a nil
	// tree or one containing a node with exactly one child.
	ErrMalformedTree = errors.New("huff: malformed tree")

	// ErrUnknownSymbol reports an attempt to encode a Symbol that had a
	// count of 0 when the Encoder was initialized.
	ErrUnknownSymbol = errors.New("huff: symbol has no code")
)
