// Package greedy collects classic greedy algorithms: procedures that
// commit to the locally best choice at every step and, for these
// problems, provably end up globally optimal.
//
// Catalogue:
//
//   - ActivitySelection: picks the largest set of non-overlapping
//     activities by always taking the earliest finisher.
//     O(n log n) time.
//   - FractionalKnapsack: fills a weight budget by value density,
//     taking a fractional slice of the last item. O(n log n) time.
//   - Huffman: builds a minimum-redundancy prefix code by repeatedly
//     merging the two lightest subtrees on a binheap priority queue.
//     O(n log n) time.
//
// Determinism: sorting steps use the stable merge sort from the sorting
// package, and Huffman breaks weight ties by node creation order with
// leaves seeded in sorted-symbol order. Identical inputs always yield
// identical outputs, including tie cases.
//
// Errors (sentinel):
//
//   - ErrLengthMismatch if paired input slices differ in length.
//   - ErrNoSymbols      if Huffman receives an empty frequency table.
package greedy
