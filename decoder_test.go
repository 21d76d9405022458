package huffman

import (
	"errors"
	"io"
	"testing"

	"github.com/chronos-tachyon/hctree/bitstream"
)

type failingStream struct {
	err error
}

func (s failingStream) ReadBit() (bool, error)  { return false, s.err }
func (s failingStream) ReadByte() (byte, error) { return 0, s.err }
func (s failingStream) WriteBit(bool) error     { return s.err }
func (s failingStream) WriteByte(byte) error    { return s.err }

func TestTree_Decode(t *testing.T) {
	tree := makeTestTree()

	src, err := bitstream.ParseBits("1100 1101 100 101 111 0 0 1100")
	if err != nil {
		t.Fatalf("ParseBits failed: %v", err)
	}

	expect := "abcdeffa"
	var actual []byte
	for src.Len() != 0 {
		sym, err := tree.Decode(src)
		if err != nil {
			t.Fatalf("Decode failed after %q: %v", actual, err)
		}
		actual = append(actual, sym)
	}
	if string(actual) != expect {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestTree_Decode_Exhausted(t *testing.T) {
	tree := makeTestTree()

	src, _ := bitstream.ParseBits("11")
	_, err := tree.Decode(src)
	if !errors.Is(err, ErrSourceExhausted) {
		t.Errorf("expected ErrSourceExhausted, got %v", err)
	}
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF to be wrapped, got %v", err)
	}
}

func TestTree_Decode_ReadError(t *testing.T) {
	tree := makeTestTree()

	errBroken := errors.New("connection reset")
	_, err := tree.Decode(failingStream{errBroken})
	if !errors.Is(err, ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
	if errors.Is(err, ErrSourceExhausted) {
		t.Errorf("did not expect ErrSourceExhausted, got %v", err)
	}
	if !errors.Is(err, errBroken) {
		t.Errorf("expected the reader's error to be wrapped, got %v", err)
	}
}

func TestTree_DecodeCode(t *testing.T) {
	tree := makeTestTree()

	type testRow struct {
		code string
		sym  byte
		err  error
	}

	testData := [...]testRow{
		{code: "1100", sym: 'a'},
		{code: "0", sym: 'f'},
		{code: "111", sym: 'e'},
		{code: "", err: ErrSourceExhausted},
		{code: "11", err: ErrSourceExhausted},
		{code: "00", err: ErrCorrupt},
		{code: "11011", err: ErrCorrupt},
	}
	for _, row := range testData {
		hc, err := ParseCode(row.code)
		if err != nil {
			t.Fatalf("ParseCode(%q) failed: %v", row.code, err)
		}
		t.Run(hc.String(), func(t *testing.T) {
			sym, err := tree.DecodeCode(hc)
			if row.err != nil {
				if !errors.Is(err, row.err) {
					t.Errorf("expected %v, got %v", row.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeCode failed: %v", err)
			}
			if sym != row.sym {
				t.Errorf("expected symbol %q, got %q", row.sym, sym)
			}
		})
	}
}

func TestTree_SingleSymbol(t *testing.T) {
	freqs := make([]uint64, NumSymbols)
	freqs['A'] = 5
	tree, err := NewTree(freqs)
	if err != nil {
		t.Fatalf("NewTree failed: %v", err)
	}

	if tree.IsEmpty() || tree.Len() != 1 {
		t.Fatalf("expected a single-leaf tree, got %s", tree)
	}

	hc, err := tree.Encode('A')
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if hc.Size != 0 {
		t.Errorf("expected an empty code, got %s", hc)
	}

	var src bitstream.Bits
	sym, err := tree.Decode(&src)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if sym != 'A' {
		t.Errorf("expected symbol 'A', got %q", sym)
	}

	// Decode must not touch the source at all.
	sym, err = tree.Decode(failingStream{errors.New("should not be read")})
	if err != nil || sym != 'A' {
		t.Errorf("expected ('A', nil), got (%q, %v)", sym, err)
	}

	if _, err := tree.Encode('B'); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTree_Empty(t *testing.T) {
	type testRow struct {
		name  string
		freqs []uint64
	}

	testData := [...]testRow{
		{name: "nil", freqs: nil},
		{name: "all-zero", freqs: make([]uint64, NumSymbols)},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			tree, err := NewTree(row.freqs)
			if err != nil {
				t.Fatalf("NewTree failed: %v", err)
			}
			if !tree.IsEmpty() || tree.Len() != 0 {
				t.Errorf("expected an empty tree, got %s", tree)
			}
			if _, err := tree.Encode('a'); !errors.Is(err, ErrEmptyTree) {
				t.Errorf("Encode: expected ErrEmptyTree, got %v", err)
			}
			var src bitstream.Bits
			_ = src.WriteByte(0xff)
			if _, err := tree.Decode(&src); !errors.Is(err, ErrEmptyTree) {
				t.Errorf("Decode: expected ErrEmptyTree, got %v", err)
			}
			if src.Len() != 8 {
				t.Errorf("Decode consumed bits from an empty tree")
			}
		})
	}

	var zero Tree
	if _, err := zero.Encode(0); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("zero Tree: expected ErrEmptyTree, got %v", err)
	}
}
