package huffman

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidArgument is returned when a caller passes an argument that
	// can never be valid, such as more than NumSymbols frequencies.
	ErrInvalidArgument = errors.New("huffman: invalid argument")

	// ErrNotFound is returned by Encode for a symbol that has no leaf.
	ErrNotFound = errors.New("huffman: symbol not found")

	// ErrEmptyTree is returned by Encode and Decode on a Tree with no root.
	ErrEmptyTree = errors.New("huffman: empty tree")

	// ErrSourceExhausted is returned when a BitReader runs out of bits in
	// the middle of a codeword or a tree shape.
	ErrSourceExhausted = errors.New("huffman: source exhausted")

	// ErrIO is returned when a BitReader or BitWriter fails for any reason
	// other than running out of data.
	ErrIO = errors.New("huffman: I/O failure")

	// ErrCorrupt is returned when a serialized tree shape or a codeword does
	// not describe a valid tree or leaf.
	ErrCorrupt = errors.New("huffman: corrupt input")
)

func readError(op string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s: %w", ErrSourceExhausted, op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}

func writeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}
