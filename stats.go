package huff

import "fmt"

// Stats reports the bit traffic of one Compress or Decompress call.
type Stats struct {
	// BitsRead counts every bit read from the input.  Compress reads its
	// input twice, so this is twice the input size.
	BitsRead int64

	// BitsWritten counts every bit written to the output, excluding the
	// zero bits that pad the last byte.
	BitsWritten int64

	// HeaderBits is the size of the tree header alone.
	HeaderBits int64
}

// Saved returns, for the Stats of a Compress call, the number of bits saved
// relative to the size of the input.  It is negative when the output is
// larger.
func (s Stats) Saved() int64 {
	return s.BitsRead/2 - s.BitsWritten
}

// String returns a one-line summary of these Stats.
func (s Stats) String() string {
	return fmt.Sprintf("read %d bits, wrote %d bits (header %d bits)", s.BitsRead, s.BitsWritten, s.HeaderBits)
}

var _ fmt.Stringer = Stats{}
