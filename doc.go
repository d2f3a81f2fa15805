// Package huff implements a lossless byte-stream compressor built on static,
// two-pass Huffman coding.
//
// A compressed artifact is self-describing:
//
//     magic       32 bits, 0xface8201
//     tree        preorder: 0 = internal (left, then right), 1 + 9 bits = leaf
//     payload     the code of every input byte, in order
//     terminator  the code of PseudoEOF, exactly once
//
// followed by zero bits up to the next byte boundary.  All values are written
// most significant bit first.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huff
