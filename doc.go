// Package huffman implements classical two-pass Huffman coding trees over a
// byte alphabet.
//
// A Tree is built once from a table of symbol frequencies, or reconstructed
// from its serialized shape, and is read-only afterwards.  It maps each
// symbol to a prefix-free Code, encodes and decodes single symbols against a
// bit stream, and writes its own shape as a compact preorder bit stream so
// that a decoder can be rebuilt without the frequency table.
//
// The bit streams themselves are supplied by the caller through the
// BitReader and BitWriter interfaces.  Package bitstream provides
// implementations of both.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
