package huff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/huff/internal/bitstream"
)

// Encoder writes the compressed container for a stream whose symbol
// frequencies are already known.
type Encoder struct {
	root  *Node
	table CodeTable
}

// Init initializes this Encoder from a FrequencyTable, building the tree and
// the code table.  The count for PseudoEOF must be positive, as it is for
// any table returned by CountFrequencies.
func (e *Encoder) Init(freq *FrequencyTable) error {
	assert.Assertf(freq[PseudoEOF] != 0, "FrequencyTable has no count for PseudoEOF")

	root, err := BuildTree(freq)
	if err != nil {
		return err
	}

	*e = Encoder{
		root:  root,
		table: MakeCodeTable(root),
	}
	return nil
}

// Tree returns the root of the Huffman tree.
func (e *Encoder) Tree() *Node {
	return e.root
}

// Table returns the code table.
func (e *Encoder) Table() *CodeTable {
	return &e.table
}

// Encode returns the code for a Symbol.  It panics if the Symbol had a count
// of 0 when the Encoder was initialized.
func (e *Encoder) Encode(symbol Symbol) Code {
	hc, ok := e.table.Lookup(symbol)
	assert.Assertf(ok, "symbol %v has no code", symbol)
	return hc
}

// MinSize is the bit length of the shortest code.
func (e *Encoder) MinSize() int {
	return e.table.MinSize()
}

// MaxSize is the bit length of the longest code.
func (e *Encoder) MaxSize() int {
	return e.table.MaxSize()
}

// WriteHeader writes the magic number followed by the tree header.
func (e *Encoder) WriteHeader(w BitWriter) error {
	if err := w.WriteBits(uint64(Magic), BitsPerInt); err != nil {
		return err
	}
	return WriteHeader(w, e.root)
}

// WriteSymbol writes the code for one Symbol.  Returns ErrUnknownSymbol if
// the Symbol has no code, e.g. because the input changed between passes.
func (e *Encoder) WriteSymbol(w BitWriter, symbol Symbol) error {
	hc, ok := e.table.Lookup(symbol)
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownSymbol, symbol)
	}
	return hc.writeTo(w)
}

// WriteData encodes every literal read from r, then the code for PseudoEOF.
// It stops at the end of r and does not flush w.
func (e *Encoder) WriteData(w BitWriter, r BitReader) error {
	for {
		u, err := r.ReadBits(BitsPerWord)
		if err != nil {
			if isEndOfStream(err) {
				break
			}
			return err
		}
		if err := e.WriteSymbol(w, Symbol(u)); err != nil {
			return err
		}
	}
	return e.WriteSymbol(w, PseudoEOF)
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.MaxSize())
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if hc, ok := e.table.Lookup(symbol); ok {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Compress reads all of in, then rewinds it and writes the compressed
// container to out.  in is rewound to its position at the time of the call,
// not to offset 0.
//
// Any bits already written to out when an error occurs are left there.
//
func Compress(in io.ReadSeeker, out io.Writer, opts *Options) (Stats, error) {
	src := bitstream.NewReader(in)
	if !src.CanReset() {
		return Stats{}, bitstream.ErrNotSeekable
	}
	dst := bitstream.NewWriter(out)

	stats := func() Stats {
		return Stats{BitsRead: src.BitsRead(), BitsWritten: dst.BitsWritten()}
	}

	freq, err := CountFrequencies(src)
	if err != nil {
		return stats(), err
	}
	opts.trace(DebugLow, "counted frequencies",
		"bytes", freq.Total()-freq[PseudoEOF],
		"distinct", freq.Distinct())

	var e Encoder
	if err := e.Init(&freq); err != nil {
		return stats(), err
	}
	headerBits := HeaderSize(e.root)
	opts.trace(DebugLow, "built tree",
		"leaves", e.root.Leaves(),
		"depth", e.root.Depth(),
		"header_bits", headerBits,
		"payload_bits", e.table.EncodedSize(&freq))
	if opts.debug(DebugHigh) {
		traceCodes(opts, &e.table)
	}

	if err := e.WriteHeader(dst); err != nil {
		return stats(), err
	}
	if err := src.Reset(); err != nil {
		return stats(), err
	}
	if err := e.WriteData(dst, src); err != nil {
		return stats(), err
	}
	if err := dst.Close(); err != nil {
		return stats(), err
	}

	s := stats()
	s.HeaderBits = int64(headerBits)
	opts.trace(DebugLow, "compressed", "bits_read", s.BitsRead, "bits_written", s.BitsWritten)
	return s, nil
}

// CompressBytes is a convenience wrapper around Compress for in-memory data.
func CompressBytes(src []byte, opts *Options) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Compress(bytes.NewReader(src), &buf, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func traceCodes(opts *Options, t *CodeTable) {
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if hc, ok := t.Lookup(symbol); ok {
			opts.trace(DebugHigh, "code", "symbol", symbol.String(), "code", hc.String())
		}
	}
}
