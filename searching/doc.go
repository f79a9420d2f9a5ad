// Package searching implements the classic slice searches: linear scan,
// binary search in iterative and recursive form, and jump search.
//
// What
//
//   - Linear[T comparable]: O(n), the only one that works on unsorted
//     data.
//   - Binary / BinaryRecursive[T cmp.Ordered]: O(log n) halving of a
//     sorted slice; the two forms differ only in control flow and always
//     agree.
//   - Jump[T cmp.Ordered]: probes a sorted slice in blocks of ⌊√n⌋, then
//     scans linearly inside the block that brackets the target. O(√n).
//
// Every search returns the index of a match, or NotFound (-1). When
// duplicates exist, Linear and Jump find the first occurrence; the
// binary searches return some matching index, not necessarily the first.
//
// The sorted-input precondition of Binary, BinaryRecursive and Jump is
// the caller's responsibility; it is documented, not checked, and an
// unsorted slice simply produces a meaningless index.
package searching
