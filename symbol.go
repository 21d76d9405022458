package huffman

// NumSymbols is the size of the alphabet.  Symbols are the byte values
// 0 .. NumSymbols-1.
const NumSymbols = 256

// MaxCodeSize is the longest Code a Tree can produce: a Tree over the full
// alphabet shaped as a chain has a leaf at depth NumSymbols-1.
const MaxCodeSize = NumSymbols - 1

// maxInternalNodes bounds the number of internal nodes in any full binary
// tree with at most NumSymbols leaves.
const maxInternalNodes = NumSymbols - 1
