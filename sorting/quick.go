package sorting

import "cmp"

// Quick returns a sorted copy of arr using quicksort with the middle
// element as pivot and a three-way partition: strictly-less, equal, and
// strictly-greater runs. Duplicate-heavy inputs collapse into the equal
// run instead of recursing, so they cost nothing extra.
//
// Complexity: O(n log n) average, O(n^2) adversarial worst case,
// O(n) extra space for the partitions.
func Quick[T cmp.Ordered](arr []T) []T {
	return QuickFunc(arr, ascending[T])
}

// QuickFunc is Quick under a caller-supplied less function. Equality is
// derived from less: neither argument less than the other.
func QuickFunc[T any](arr []T, less func(a, b T) bool) []T {
	if len(arr) < 2 {
		return clone(arr)
	}

	pivot := arr[len(arr)/2]
	var smaller, equal, greater []T
	for _, v := range arr {
		switch {
		case less(v, pivot):
			smaller = append(smaller, v)
		case less(pivot, v):
			greater = append(greater, v)
		default:
			equal = append(equal, v)
		}
	}

	out := QuickFunc(smaller, less)
	out = append(out, equal...)
	out = append(out, QuickFunc(greater, less)...)

	return out
}
