package sorting

import "cmp"

// Merge returns a sorted copy of arr using merge sort: split at the
// midpoint, sort both halves, merge. The merge prefers the left half on
// ties, which is what keeps the sort stable.
//
// Stable. Complexity: O(n log n) always, O(n) extra space.
func Merge[T cmp.Ordered](arr []T) []T {
	return MergeFunc(arr, ascending[T])
}

// MergeFunc is Merge under a caller-supplied less function.
func MergeFunc[T any](arr []T, less func(a, b T) bool) []T {
	out := clone(arr)
	if len(out) < 2 {
		return out
	}

	mid := len(out) / 2
	left := MergeFunc(out[:mid], less)
	right := MergeFunc(out[mid:], less)

	return merge(left, right, less)
}

// merge interleaves two sorted runs, taking from the left run unless the
// right head is strictly smaller.
func merge[T any](left, right []T, less func(a, b T) bool) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			out = append(out, right[j])
			j++
		} else {
			out = append(out, left[i])
			i++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out
}
