// Package binheap implements a binary heap as a flat array with an
// explicit comparator.
//
// What
//
//   - Heap[T]: Push (append + sift-up), Pop (swap root with last, shrink,
//     sift-down), Peek, all against a caller-supplied less function.
//   - NewMin / NewMax: ready-made heaps for ordered element types. A max
//     heap is the same engine with the comparator inverted; values are
//     never negated or otherwise transformed.
//   - FromSlice: bottom-up heap construction in O(n), cheaper than n
//     pushes when the elements are known up front.
//
// Why
//
//   - A priority queue is the beating heart of several siblings here:
//     dijkstra orders its frontier with a min heap of tentative
//     distances, and greedy builds Huffman trees by repeatedly popping
//     the two lightest subtrees.
//
// Complexity
//
//	Push / Pop: O(log n)    Peek: O(1)    FromSlice: O(n)
//
// The array layout is the textbook one: children of index i sit at
// 2i+1 and 2i+2, the parent at (i-1)/2. The heap property is only
// parent-versus-child; siblings are unordered, so iterating the raw
// array yields no particular order.
package binheap
