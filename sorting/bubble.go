package sorting

import "cmp"

// Bubble returns a sorted copy of arr using bubble sort: adjacent
// out-of-order pairs swap until a full pass makes no swap. The early
// exit makes already-sorted input a single O(n) pass.
//
// Stable. Complexity: O(n^2) worst, O(n) best, O(1) extra space.
func Bubble[T cmp.Ordered](arr []T) []T {
	return BubbleFunc(arr, ascending[T])
}

// BubbleFunc is Bubble under a caller-supplied less function.
func BubbleFunc[T any](arr []T, less func(a, b T) bool) []T {
	out := clone(arr)
	for n := len(out); n > 1; n-- {
		swapped := false
		for j := 0; j < n-1; j++ {
			if less(out[j+1], out[j]) {
				out[j], out[j+1] = out[j+1], out[j]
				swapped = true
			}
		}
		// A swap-free pass proves the slice is sorted.
		if !swapped {
			break
		}
	}

	return out
}
