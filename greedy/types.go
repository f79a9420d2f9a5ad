package greedy

import "errors"

// Sentinel errors returned by the greedy algorithms.
var (
	// ErrLengthMismatch indicates that paired input slices (starts and
	// finishes, or weights and values) differ in length.
	ErrLengthMismatch = errors.New("greedy: paired input slices differ in length")

	// ErrNoSymbols indicates that Huffman received an empty frequency
	// table, for which no code exists.
	ErrNoSymbols = errors.New("greedy: no symbols to encode")
)

// Activity is one interval candidate for ActivitySelection. An
// activity occupies [Start, Finish); two activities are compatible
// when one starts at or after the other's finish.
type Activity struct {
	Start  int
	Finish int
}

// SymbolCode is one entry of a Huffman code table: the symbol and its
// binary code as a string of '0' and '1' bytes.
type SymbolCode struct {
	Symbol string
	Code   string
}
