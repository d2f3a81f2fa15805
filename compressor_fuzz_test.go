package huff

import (
	"bytes"
	"testing"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("abab"))
	f.Add([]byte("abracadabra"))
	f.Add(bytes.Repeat([]byte{0xff}, 64))

	f.Fuzz(func(t *testing.T, input []byte) {
		compressed, err := CompressBytes(input, nil)
		if err != nil {
			t.Fatalf("CompressBytes failed: %v", err)
		}
		decompressed, err := DecompressBytes(compressed, nil)
		if err != nil {
			t.Fatalf("DecompressBytes failed: %v", err)
		}
		if !bytes.Equal(input, decompressed) {
			t.Fatalf("round trip mismatch: %d bytes in, %d bytes out", len(input), len(decompressed))
		}
	})
}

func FuzzDecompress(f *testing.F) {
	f.Add(ababContainer)
	f.Add([]byte{0xfa, 0xce, 0x82, 0x01, 0xc0, 0x00})
	f.Add([]byte{0xfa, 0xce, 0x82, 0x01, 0x00, 0x00, 0x00})

	// Arbitrary input must never panic or loop; it either decodes or fails.
	f.Fuzz(func(t *testing.T, input []byte) {
		_, _ = DecompressBytes(input, nil)
	})
}
