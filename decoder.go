package huff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/huff/internal/bitstream"
)

// DecoderState is the position of a Decoder in the container.
type DecoderState byte

// Decoder states.  A Decoder moves forward through them in order, except
// that any state may move to Failed.
const (
	ExpectingMagic DecoderState = iota
	ExpectingHeader
	Walking
	Done
	Failed
)

var decoderStateNames = [...]string{
	ExpectingMagic:  "ExpectingMagic",
	ExpectingHeader: "ExpectingHeader",
	Walking:         "Walking",
	Done:            "Done",
	Failed:          "Failed",
}

// String returns the name of this DecoderState.
func (state DecoderState) String() string {
	if int(state) < len(decoderStateNames) {
		return decoderStateNames[state]
	}
	return fmt.Sprintf("DecoderState(%d)", byte(state))
}

var _ fmt.Stringer = DecoderState(0)

// Decoder implements the decoding state machine for the container format.
//
// Each call to Step performs one unit of work: reading the magic number,
// reading the tree header, or reading one payload bit.  Once the Decoder
// reaches Done it performs no further reads.  Once it fails, every later Step
// returns the same error.
//
type Decoder struct {
	opts    *Options
	state   DecoderState
	root    *Node
	cursor  *Node
	err     error
	symbols int64
}

// NewDecoder returns a Decoder in the ExpectingMagic state.
func NewDecoder(opts *Options) *Decoder {
	return &Decoder{opts: opts}
}

// Reset returns this Decoder to the ExpectingMagic state.
func (d *Decoder) Reset() {
	*d = Decoder{opts: d.opts}
}

// InitTree skips the magic number and the tree header: the Decoder will
// decode a bare payload using the given tree.  This is the counterpart of
// Encoder.WriteData.
func (d *Decoder) InitTree(root *Node) error {
	d.Reset()
	if root == nil {
		return d.fail(fmt.Errorf("%w: nil tree", ErrMalformedTree))
	}
	return d.plant(root)
}

// State returns the current state.
func (d *Decoder) State() DecoderState {
	return d.state
}

// Tree returns the tree read from the header, or nil if it has not been read.
func (d *Decoder) Tree() *Node {
	return d.root
}

// Err returns the error that moved this Decoder to Failed, or nil.
func (d *Decoder) Err() error {
	return d.err
}

// Symbols returns the number of literals written so far.
func (d *Decoder) Symbols() int64 {
	return d.symbols
}

// Run calls Step until the Decoder reaches Done or fails.
func (d *Decoder) Run(r BitReader, w BitWriter) error {
	for d.state != Done {
		if err := d.Step(r, w); err != nil {
			return err
		}
	}
	return nil
}

// Step performs one unit of work, reading from r and writing decoded bytes to
// w.
func (d *Decoder) Step(r BitReader, w BitWriter) error {
	switch d.state {
	case ExpectingMagic:
		return d.readMagic(r)
	case ExpectingHeader:
		return d.readHeader(r)
	case Walking:
		return d.walk(r, w)
	case Done:
		return nil
	default:
		return d.err
	}
}

func (d *Decoder) fail(err error) error {
	d.state = Failed
	d.err = err
	return err
}

func (d *Decoder) readMagic(r BitReader) error {
	u, err := r.ReadBits(BitsPerInt)
	if err != nil {
		if isEndOfStream(err) {
			return d.fail(fmt.Errorf("%w: missing magic number", ErrFormat))
		}
		return d.fail(err)
	}
	if uint32(u) != Magic {
		return d.fail(fmt.Errorf("%w: illegal header starts with %#08x", ErrFormat, u))
	}
	d.state = ExpectingHeader
	return nil
}

func (d *Decoder) readHeader(r BitReader) error {
	root, err := ReadHeader(r)
	if err != nil {
		return d.fail(err)
	}
	d.opts.trace(DebugLow, "read tree",
		"leaves", root.Leaves(),
		"depth", root.Depth(),
		"header_bits", HeaderSize(root))
	if d.opts.debug(DebugHigh) {
		table := MakeCodeTable(root)
		traceCodes(d.opts, &table)
	}
	return d.plant(root)
}

// plant makes root the tree to walk.  A tree that is a single leaf has only
// the empty code: a lone PseudoEOF is an empty payload, and any other lone
// Symbol would decode forever without consuming input.
func (d *Decoder) plant(root *Node) error {
	d.root = root
	d.cursor = root
	if !root.IsLeaf() {
		d.state = Walking
		return nil
	}
	if root.Symbol != PseudoEOF {
		return d.fail(fmt.Errorf("%w: tree is a single leaf %v", ErrFormat, root.Symbol))
	}
	d.state = Done
	return nil
}

func (d *Decoder) walk(r BitReader, w BitWriter) error {
	bit, err := r.ReadBits(1)
	if err != nil {
		if isEndOfStream(err) {
			return d.fail(fmt.Errorf("%w: input ends after %d symbols", ErrTruncatedInput, d.symbols))
		}
		return d.fail(err)
	}

	next := d.cursor.Left
	if bit != 0 {
		next = d.cursor.Right
	}
	if next == nil {
		return d.fail(fmt.Errorf("%w: code leads to a missing child after %d symbols", ErrFormat, d.symbols))
	}
	if !next.IsLeaf() {
		d.cursor = next
		return nil
	}

	switch {
	case next.Symbol == PseudoEOF:
		d.cursor = nil
		d.state = Done
		d.opts.trace(DebugLow, "reached end of stream", "symbols", d.symbols)
		return nil
	case !next.Symbol.IsLiteral():
		return d.fail(fmt.Errorf("%w: leaf with invalid symbol %d", ErrFormat, next.Symbol))
	}

	if err := w.WriteBits(uint64(next.Symbol), BitsPerWord); err != nil {
		return d.fail(err)
	}
	d.symbols++
	d.cursor = d.root
	return nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tState() = %v\n", d.state)
	fmt.Fprintf(&buf, "\tSymbols() = %d\n", d.symbols)
	if d.err != nil {
		fmt.Fprintf(&buf, "\tErr() = %v\n", d.err)
	}
	d.root.dumpTo(&buf, 1)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Decompress reads a compressed container from in and writes the decoded
// bytes to out.  It reads nothing past the end-of-stream code except what
// buffering in the underlying bit reader consumes.
//
// Any bytes already written to out when an error occurs are left there.
//
func Decompress(in io.Reader, out io.Writer, opts *Options) (Stats, error) {
	src := bitstream.NewReader(in)
	dst := bitstream.NewWriter(out)

	d := NewDecoder(opts)
	err := d.Run(src, dst)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}

	s := Stats{BitsRead: src.BitsRead(), BitsWritten: dst.BitsWritten()}
	if d.root != nil {
		s.HeaderBits = int64(HeaderSize(d.root))
	}
	if err != nil {
		return s, err
	}
	opts.trace(DebugLow, "decompressed", "bits_read", s.BitsRead, "bits_written", s.BitsWritten)
	return s, nil
}

// DecompressBytes is a convenience wrapper around Decompress for in-memory
// data.
func DecompressBytes(src []byte, opts *Options) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Decompress(bytes.NewReader(src), &buf, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
