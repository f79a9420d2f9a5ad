package sorting

import "cmp"

// Insertion returns a sorted copy of arr using insertion sort: each
// element shifts left past every strictly greater element of the sorted
// prefix. Equal elements never pass each other.
//
// Stable. Complexity: O(n^2) worst, O(n) on nearly-sorted input,
// O(1) extra space.
func Insertion[T cmp.Ordered](arr []T) []T {
	return InsertionFunc(arr, ascending[T])
}

// InsertionFunc is Insertion under a caller-supplied less function.
func InsertionFunc[T any](arr []T, less func(a, b T) bool) []T {
	out := clone(arr)
	for i := 1; i < len(out); i++ {
		key := out[i]
		j := i - 1
		for j >= 0 && less(key, out[j]) {
			out[j+1] = out[j]
			j--
		}
		out[j+1] = key
	}

	return out
}
