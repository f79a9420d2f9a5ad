package sorting

import (
	"cmp"
	"errors"
)

// ErrNegativeValue is returned by Counting when the input contains a
// negative integer; counting sort indexes a frequency table by value and
// has no slot for them.
var ErrNegativeValue = errors.New("sorting: counting sort requires non-negative integers")

// ascending is the comparator behind the cmp.Ordered entrypoints.
func ascending[T cmp.Ordered](a, b T) bool {
	return a < b
}

// clone copies the input so every sort stays pure.
func clone[T any](arr []T) []T {
	if arr == nil {
		return nil
	}

	return append(make([]T, 0, len(arr)), arr...)
}
