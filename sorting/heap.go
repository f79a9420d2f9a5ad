package sorting

import "cmp"

// Heap returns a sorted copy of arr using heapsort: the copy is
// max-heapified bottom-up in place, then the root is repeatedly swapped
// behind the shrinking heap boundary and sifted down.
//
// Not stable. Complexity: O(n log n) always, O(1) extra space beyond
// the copy.
func Heap[T cmp.Ordered](arr []T) []T {
	return HeapFunc(arr, ascending[T])
}

// HeapFunc is Heap under a caller-supplied less function.
func HeapFunc[T any](arr []T, less func(a, b T) bool) []T {
	out := clone(arr)
	n := len(out)

	// 1) Build the max-heap: sift down every internal node, last parent
	//    first.
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(out, n, i, less)
	}
	// 2) Extract: the root is the maximum of the live prefix; park it at
	//    the end and restore the heap on what remains.
	for i := n - 1; i > 0; i-- {
		out[0], out[i] = out[i], out[0]
		siftDown(out, i, 0, less)
	}

	return out
}

// siftDown restores the max-heap property for the subtree rooted at i,
// considering only the first n elements.
func siftDown[T any](arr []T, n, i int, less func(a, b T) bool) {
	for {
		largest := i
		if l := 2*i + 1; l < n && less(arr[largest], arr[l]) {
			largest = l
		}
		if r := 2*i + 2; r < n && less(arr[largest], arr[r]) {
			largest = r
		}
		if largest == i {
			return
		}
		arr[i], arr[largest] = arr[largest], arr[i]
		i = largest
	}
}
