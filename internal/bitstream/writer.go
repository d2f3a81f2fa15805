package bitstream

import (
	"io"

	"github.com/icza/bitio"
)

// Writer writes bit-granular values to a byte stream.
type Writer struct {
	bw    *bitio.Writer
	count int64
}

// NewWriter returns a Writer that emits to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bitio.NewWriter(w)}
}

// WriteBits writes the n (0 < n <= 64) least significant bits of r, most
// significant first.  Higher bits of r are ignored.
func (w *Writer) WriteBits(r uint64, n uint8) error {
	if n < 64 {
		r &= (uint64(1) << n) - 1
	}
	if err := w.bw.WriteBits(r, n); err != nil {
		return err
	}
	w.count += int64(n)
	return nil
}

// WriteBool writes a single bit.
func (w *Writer) WriteBool(b bool) error {
	var u uint64
	if b {
		u = 1
	}
	return w.WriteBits(u, 1)
}

// Close pads the final partial byte with zero bits and flushes it.  It does
// not close the underlying io.Writer.  BitsWritten does not include padding.
func (w *Writer) Close() error {
	return w.bw.Close()
}

// BitsWritten returns the number of bits written so far, excluding padding.
func (w *Writer) BitsWritten() int64 {
	return w.count
}
