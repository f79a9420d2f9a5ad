package sorting

import "cmp"

// Selection returns a sorted copy of arr using selection sort: each pass
// finds the minimum of the unsorted suffix and swaps it into place. The
// long-range swap is what breaks stability.
//
// Not stable. Complexity: O(n^2) always, O(1) extra space.
func Selection[T cmp.Ordered](arr []T) []T {
	return SelectionFunc(arr, ascending[T])
}

// SelectionFunc is Selection under a caller-supplied less function.
func SelectionFunc[T any](arr []T, less func(a, b T) bool) []T {
	out := clone(arr)
	for i := 0; i < len(out)-1; i++ {
		min := i
		for j := i + 1; j < len(out); j++ {
			if less(out[j], out[min]) {
				min = j
			}
		}
		if min != i {
			out[i], out[min] = out[min], out[i]
		}
	}

	return out
}
