package huff

import (
	"fmt"
	"strconv"
)

// Symbol represents one of the AlphabetSize atomic units of the codec: a
// literal byte value, or PseudoEOF.  Negative symbols are not valid.
type Symbol int32

const (
	// BitsPerWord is the width of one literal symbol in the input.
	BitsPerWord = 8

	// BitsPerSymbol is the width of a symbol stored in a tree header.  It
	// covers every literal plus PseudoEOF.
	BitsPerSymbol = BitsPerWord + 1

	// BitsPerInt is the width of the container's magic number.
	BitsPerInt = 32
)

// PseudoEOF is the reserved symbol marking the end of the payload.
const PseudoEOF = Symbol(1 << BitsPerWord)

// AlphabetSize is the number of distinct symbols, including PseudoEOF.
const AlphabetSize = int(PseudoEOF) + 1

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = PseudoEOF

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// Magic identifies the container format.  It is the first BitsPerInt bits of
// every compressed artifact.
const Magic uint32 = 0xface8200 | 1

// IsValid returns true iff sym is in [0, MaxSymbol].
func (sym Symbol) IsValid() bool {
	return sym >= 0 && sym <= MaxSymbol
}

// IsLiteral returns true iff sym stands for a byte of input.
func (sym Symbol) IsLiteral() bool {
	return sym >= 0 && sym < PseudoEOF
}

// String returns a programmer-readable representation of this Symbol.
func (sym Symbol) String() string {
	switch {
	case sym == PseudoEOF:
		return "EOF"
	case sym >= 0x20 && sym < 0x7f:
		return strconv.QuoteRune(rune(sym))
	case sym.IsLiteral():
		return fmt.Sprintf("0x%02x", int32(sym))
	default:
		return fmt.Sprintf("Symbol(%d)", int32(sym))
	}
}

var _ fmt.Stringer = Symbol(0)
