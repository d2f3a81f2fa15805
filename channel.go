package huff

import (
	"github.com/chronos-tachyon/huff/internal/bitstream"
)

// BitReader is the input side of a bit channel.  ReadBits returns the next n
// bits, most significant first, as the low bits of the result.  When the
// source is exhausted it returns an error satisfying errors.Is(err, io.EOF).
//
// Both *bitstream.Reader and *bitio.Reader implement BitReader.
//
type BitReader interface {
	ReadBits(n uint8) (uint64, error)
}

// BitWriter is the output side of a bit channel.  WriteBits emits the n
// least significant bits of r, most significant first.
type BitWriter interface {
	WriteBits(r uint64, n uint8) error
}

var (
	_ BitReader = (*bitstream.Reader)(nil)
	_ BitWriter = (*bitstream.Writer)(nil)
)
