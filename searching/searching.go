package searching

import (
	"cmp"
	"math"
)

// NotFound is the index returned when the target does not occur.
const NotFound = -1

// Linear scans arr front to back and returns the index of the first
// element equal to target, or NotFound. The slice may be unsorted.
//
// Complexity: O(n)
func Linear[T comparable](arr []T, target T) int {
	for i, v := range arr {
		if v == target {
			return i
		}
	}

	return NotFound
}

// Binary searches a sorted (ascending) slice by repeated halving and
// returns an index holding target, or NotFound.
//
// Complexity: O(log n)
func Binary[T cmp.Ordered](arr []T, target T) int {
	left, right := 0, len(arr)-1
	for left <= right {
		mid := left + (right-left)/2
		switch {
		case arr[mid] == target:
			return mid
		case arr[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return NotFound
}

// BinaryRecursive is Binary with the halving expressed as recursion on
// an explicit [left, right] window. It returns exactly what Binary
// returns for every input.
//
// Complexity: O(log n) time and stack.
func BinaryRecursive[T cmp.Ordered](arr []T, target T) int {
	return binaryWindow(arr, target, 0, len(arr)-1)
}

func binaryWindow[T cmp.Ordered](arr []T, target T, left, right int) int {
	if left > right {
		return NotFound
	}
	mid := left + (right-left)/2
	switch {
	case arr[mid] == target:
		return mid
	case arr[mid] < target:
		return binaryWindow(arr, target, mid+1, right)
	default:
		return binaryWindow(arr, target, left, mid-1)
	}
}

// Jump searches a sorted (ascending) slice in blocks of ⌊√n⌋: it leaps
// block by block until the block end reaches the target, then scans that
// block linearly. Returns the index of the first occurrence, or
// NotFound.
//
// Complexity: O(√n)
func Jump[T cmp.Ordered](arr []T, target T) int {
	n := len(arr)
	if n == 0 {
		return NotFound
	}

	block := int(math.Sqrt(float64(n)))
	step := block
	prev := 0

	// 1) Leap until the current block could contain the target.
	for arr[min(step, n)-1] < target {
		prev = step
		step += block
		if prev >= n {
			return NotFound
		}
	}
	// 2) Linear scan inside the block.
	for arr[prev] < target {
		prev++
		if prev == min(step, n) {
			return NotFound
		}
	}
	if arr[prev] == target {
		return prev
	}

	return NotFound
}
