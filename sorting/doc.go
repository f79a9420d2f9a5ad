// Package sorting implements the classic comparison sorts plus counting
// sort, as pure functions: every sort copies its input, sorts the copy
// ascending, and returns it. The argument slice is never reordered.
//
// What
//
//	Sort       | Time           | Space | Stable
//	-----------+----------------+-------+-------
//	Bubble     | O(n^2)*        | O(1)  | yes
//	Selection  | O(n^2)         | O(1)  | no
//	Insertion  | O(n^2)         | O(1)  | yes
//	Merge      | O(n log n)     | O(n)  | yes
//	Quick      | O(n log n) avg | O(n)  | no
//	Heap       | O(n log n)     | O(1)  | no
//	Counting   | O(n + k)       | O(k)  | yes
//
//	* early exit makes a sorted input O(n).
//
// Each comparison sort comes in two forms: Bubble[T cmp.Ordered] sorts
// by <, and BubbleFunc[T any] sorts by a caller-supplied less function
// (and so can sort structs, or sort descending). Counting applies to
// non-negative ints only and returns ErrNegativeValue otherwise.
//
// Why
//
//   - The quadratic sorts earn their keep on tiny or nearly-sorted data
//     and as the reference points the fast sorts are measured against.
//     Merge guarantees the bound, Heap adds in-place behaviour, Quick
//     wins on average, Counting beats them all when the key range is
//     small.
//
// Quick uses the middle element as pivot with a three-way partition, so
// duplicate-heavy inputs do not degrade it.
package sorting
