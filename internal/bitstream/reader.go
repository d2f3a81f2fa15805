// Package bitstream provides the bit channel used by the codec: a counting,
// rewindable MSB-first bit reader and a zero-padding bit writer, both over
// ordinary byte streams.
package bitstream

import (
	"errors"
	"io"

	"github.com/icza/bitio"
)

// ErrNotSeekable is returned by Reset when the underlying stream cannot seek.
var ErrNotSeekable = errors.New("bitstream: source does not support seeking")

// Reader reads bit-granular values from a byte stream.
type Reader struct {
	src    io.Reader
	seeker io.Seeker // nil if src cannot be rewound
	origin int64     // position of src when the Reader was created
	br     *bitio.Reader
	count  int64 // bits successfully read, across resets
}

// NewReader returns a Reader positioned at the current offset of r.  If r is
// an io.Seeker that reports its position, that position becomes the target of
// Reset.
func NewReader(r io.Reader) *Reader {
	br := &Reader{src: r, br: bitio.NewReader(r)}
	if s, ok := r.(io.Seeker); ok {
		if pos, err := s.Seek(0, io.SeekCurrent); err == nil {
			br.seeker = s
			br.origin = pos
		}
	}
	return br
}

// ReadBits reads the next n bits (0 < n <= 64), returned in the low bits of
// the result with the first bit read as the most significant.  At the end of
// the stream it returns io.EOF, including when the stream ends partway
// through the requested bits.
func (r *Reader) ReadBits(n uint8) (uint64, error) {
	u, err := r.br.ReadBits(n)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			err = io.EOF
		}
		return 0, err
	}
	r.count += int64(n)
	return u, nil
}

// ReadBool reads a single bit.
func (r *Reader) ReadBool() (bool, error) {
	u, err := r.ReadBits(1)
	return u != 0, err
}

// Reset rewinds the stream to where it was when the Reader was created and
// discards any buffered bits.  The running bit count is kept.
func (r *Reader) Reset() error {
	if r.seeker == nil {
		return ErrNotSeekable
	}
	if _, err := r.seeker.Seek(r.origin, io.SeekStart); err != nil {
		return err
	}
	r.br = bitio.NewReader(r.src)
	return nil
}

// CanReset returns true iff Reset is supported.
func (r *Reader) CanReset() bool {
	return r.seeker != nil
}

// BitsRead returns the number of bits successfully read so far.
func (r *Reader) BitsRead() int64 {
	return r.count
}
