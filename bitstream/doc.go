// Package bitstream provides bit-level readers and writers for use with
// package huffman.
//
// Reader and Writer wrap github.com/icza/bitio.  StreamReader and
// StreamWriter wrap github.com/dgryski/go-bitstream.  Both pack bits most
// significant bit first and can read each other's output.  Bits is an
// in-memory buffer for short sequences such as a single codeword.
//
package bitstream
