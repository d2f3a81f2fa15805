package huff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest code that a tree over AlphabetSize leaves can
// assign.  It is also the deepest tree that ReadHeader will accept.
const MaxCodeSize = AlphabetSize - 1

const codeWords = (MaxCodeSize + 63) / 64

// Code represents an immutable sequence of up to MaxCodeSize bits.
//
// Bits are stored most significant first: the first bit of the sequence is
// the top bit of the first word.  Code is a value type; Append returns a new
// Code and never modifies its receiver, so a Code may be handed down a tree
// walk without any risk of sibling branches sharing state.
//
type Code struct {
	size  uint16
	words [codeWords]uint64
}

// MakeCode is a convenience function that constructs a Code of up to 64 bits.
// The size least significant bits of bits are used, and the most significant
// of those is the first bit of the Code.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= 64, "size %d > 64", size)
	var hc Code
	for i := int(size) - 1; i >= 0; i-- {
		hc = hc.Append(uint((bits >> uint(i)) & 1))
	}
	return hc
}

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return int(hc.size)
}

// Bit returns the i'th bit of this Code, counting from 0.
func (hc Code) Bit(i int) uint {
	assert.Assertf(i >= 0 && i < int(hc.size), "bit index %d out of range [0, %d)", i, hc.size)
	word := hc.words[i/64]
	return uint(word>>(63-uint(i%64))) & 1
}

// Append returns a copy of this Code with one more bit at the end.  Any
// non-zero value of bit is treated as 1.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(int(hc.size) < MaxCodeSize, "code is already %d bits long", hc.size)
	if bit != 0 {
		i := uint(hc.size)
		hc.words[i/64] |= uint64(1) << (63 - i%64)
	}
	hc.size++
	return hc
}

// HasPrefix returns true iff prefix is a prefix of this Code.  Every Code is
// a prefix of itself, and the empty Code is a prefix of every Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.size > hc.size {
		return false
	}
	for i := 0; i < int(prefix.size); i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.size == 0 {
		return "\"\""
	}
	var sb strings.Builder
	sb.Grow(int(hc.size))
	for i := 0; i < int(hc.size); i++ {
		sb.WriteByte('0' + byte(hc.Bit(i)))
	}
	return strconv.Quote(sb.String())
}

// writeTo emits the bits of this Code in order, up to 64 at a time.
func (hc Code) writeTo(w BitWriter) error {
	remaining := int(hc.size)
	for i := 0; remaining > 0; i++ {
		n := remaining
		if n > 64 {
			n = 64
		}
		if err := w.WriteBits(hc.words[i]>>uint(64-n), uint8(n)); err != nil {
			return err
		}
		remaining -= n
	}
	return nil
}

var _ fmt.Stringer = Code{}
