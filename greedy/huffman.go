package greedy

import (
	"github.com/velkatra/algolith/binheap"
	"github.com/velkatra/algolith/sorting"
)

// huffNode is one node of the Huffman merge tree. seq makes weight
// ties deterministic: leaves take 0..k-1 in sorted-symbol order and
// merged nodes continue the numbering in creation order.
type huffNode struct {
	weight int
	seq    int
	symbol string
	left   *huffNode
	right  *huffNode
}

// byWeightThenSeq orders the priority queue: lighter subtree first,
// earlier-created subtree on equal weight.
func byWeightThenSeq(a, b *huffNode) bool {
	if a.weight != b.weight {
		return a.weight < b.weight
	}

	return a.seq < b.seq
}

// Huffman builds a minimum-redundancy prefix code for the given
// symbol frequencies and returns the code table sorted by code length,
// then by symbol.
//
// The construction is fully deterministic: symbols enter the queue in
// sorted order, weight ties break by node creation order, and the
// first-popped subtree of each merge receives the '0' branch. A lone
// symbol gets the empty code. An empty frequency table yields
// ErrNoSymbols.
//
// Complexity: O(n log n) time, O(n) space, plus O(total code length)
// for the table itself.
func Huffman(freqs map[string]int) ([]SymbolCode, error) {
	// 1) Validate input.
	if len(freqs) == 0 {
		return nil, ErrNoSymbols
	}

	// 2) Seed one leaf per symbol, in sorted-symbol order.
	symbols := make([]string, 0, len(freqs))
	for s := range freqs {
		symbols = append(symbols, s)
	}
	symbols = sorting.Merge(symbols)

	pq := binheap.New(byWeightThenSeq)
	seq := 0
	for _, s := range symbols {
		pq.Push(&huffNode{weight: freqs[s], seq: seq, symbol: s})
		seq++
	}

	// 3) Merge the two lightest subtrees until one tree remains.
	for pq.Len() > 1 {
		lo, _ := pq.Pop()
		hi, _ := pq.Pop()
		pq.Push(&huffNode{
			weight: lo.weight + hi.weight,
			seq:    seq,
			left:   lo,
			right:  hi,
		})
		seq++
	}

	// 4) Read codes off the tree: '0' left, '1' right. When the root is
	//    itself a leaf (single symbol), its code stays empty.
	root, _ := pq.Pop()
	codes := make([]SymbolCode, 0, len(symbols))
	var walk func(n *huffNode, code string)
	walk = func(n *huffNode, code string) {
		if n.left == nil && n.right == nil {
			codes = append(codes, SymbolCode{Symbol: n.symbol, Code: code})
			return
		}
		walk(n.left, code+"0")
		walk(n.right, code+"1")
	}
	walk(root, "")

	// 5) Present shortest codes first, ties by symbol.
	codes = sorting.MergeFunc(codes, func(a, b SymbolCode) bool {
		if len(a.Code) != len(b.Code) {
			return len(a.Code) < len(b.Code)
		}

		return a.Symbol < b.Symbol
	})

	return codes, nil
}
