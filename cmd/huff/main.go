// Command huff compresses and decompresses files with the huff codec.
//
// Usage:
//
//	huff -a c -f input -o output.hf
//	huff -a d -f output.hf -o input.copy
//
// With no -f, input is read from stdin; with no -o, output goes to stdout.
// Statistics are printed to stderr.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/chronos-tachyon/huff"
)

var (
	f      = flag.String("f", "", "input file")
	o      = flag.String("o", "", "output file")
	a      = flag.String("a", "c", "action: c for compression, d for decompression")
	v      = flag.Int("v", 0, "debug level: 0 off, 1 low, 4 high")
	verify = flag.Bool("verify", false, "after compressing, decompress the output and compare digests")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("huff: ")
	flag.Parse()

	opts := &huff.Options{
		Debug:  huff.DebugLevel(*v),
		Logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}

	var err error
	switch *a {
	case "c":
		err = runCompress(opts)
	case "d":
		err = runDecompress(opts)
	default:
		err = fmt.Errorf("unknown action %q", *a)
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// openInput returns a rewindable input.  Regular files are used as is;
// anything else is read into memory first.
func openInput() (io.ReadSeeker, int64, func(), error) {
	if *f == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, 0, nil, err
		}
		return bytes.NewReader(data), int64(len(data)), func() {}, nil
	}
	file, err := os.Open(*f)
	if err != nil {
		return nil, 0, nil, err
	}
	fi, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, 0, nil, err
	}
	if !fi.Mode().IsRegular() {
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, 0, nil, err
		}
		return bytes.NewReader(data), int64(len(data)), func() {}, nil
	}
	return file, fi.Size(), func() { file.Close() }, nil
}

func openOutput() (io.Writer, func() error, error) {
	if *o == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	file, err := os.Create(*o)
	if err != nil {
		return nil, nil, err
	}
	return file, file.Close, nil
}

func runCompress(opts *huff.Options) error {
	input, size, closeInput, err := openInput()
	if err != nil {
		return err
	}
	defer closeInput()

	output, closeOutput, err := openOutput()
	if err != nil {
		return err
	}

	var artifact bytes.Buffer
	var w io.Writer = output
	if *verify {
		w = io.MultiWriter(output, &artifact)
	}

	stats, err := huff.Compress(input, w, opts)
	if cerr := closeOutput(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	log.Printf("file: %d bits to %d bits", size*8, (stats.BitsWritten+7)/8*8)
	log.Printf("read %d bits, wrote %d bits", stats.BitsRead, stats.BitsWritten)
	log.Printf("bits saved = %d", stats.Saved())

	if *verify {
		return verifyArtifact(input, artifact.Bytes(), opts)
	}
	return nil
}

// verifyArtifact decompresses the artifact into a digest and compares it with
// the digest of the original input, without holding the decoded copy.
func verifyArtifact(input io.ReadSeeker, artifact []byte, opts *huff.Options) error {
	if _, err := input.Seek(0, io.SeekStart); err != nil {
		return err
	}
	want := xxhash.New()
	if _, err := io.Copy(want, input); err != nil {
		return err
	}

	got := xxhash.New()
	if _, err := huff.Decompress(bytes.NewReader(artifact), got, opts); err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if want.Sum64() != got.Sum64() {
		return fmt.Errorf("verify: digest mismatch: input %016x, decoded %016x", want.Sum64(), got.Sum64())
	}
	log.Printf("verified: xxhash64 %016x", got.Sum64())
	return nil
}

func runDecompress(opts *huff.Options) error {
	input, size, closeInput, err := openInput()
	if err != nil {
		return err
	}
	defer closeInput()

	output, closeOutput, err := openOutput()
	if err != nil {
		return err
	}

	stats, err := huff.Decompress(input, output, opts)
	if cerr := closeOutput(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	log.Printf("file: %d bits to %d bits", size*8, stats.BitsWritten)
	log.Printf("read %d bits, wrote %d bits", stats.BitsRead, stats.BitsWritten)
	log.Printf("%d compared to %d", stats.BitsWritten-size*8, stats.BitsWritten-stats.BitsRead)
	return nil
}
