package greedy

import "github.com/velkatra/algolith/sorting"

// fractionalItem pairs an item with its precomputed value density.
type fractionalItem struct {
	density float64
	weight  int
	value   int
}

// FractionalKnapsack returns the best total value obtainable within
// capacity when items may be split: take whole items in order of value
// density (value per unit weight), then a fractional slice of the next
// one. Weights must be positive; the two slices must have equal length.
//
// Equal densities resolve by input order (the sort is stable).
//
// Complexity: O(n log n) time, O(n) space.
func FractionalKnapsack(weights, values []int, capacity int) (float64, error) {
	// 1) Validate the pairing.
	if len(weights) != len(values) {
		return 0, ErrLengthMismatch
	}

	// 2) Rank items by density, best first.
	items := make([]fractionalItem, len(weights))
	for i := range weights {
		items[i] = fractionalItem{
			density: float64(values[i]) / float64(weights[i]),
			weight:  weights[i],
			value:   values[i],
		}
	}
	items = sorting.MergeFunc(items, func(a, b fractionalItem) bool {
		return a.density > b.density
	})

	// 3) Take whole items while they fit, then top up with a fraction of
	//    the first item that does not.
	total := 0.0
	remaining := capacity
	for _, it := range items {
		if remaining >= it.weight {
			remaining -= it.weight
			total += float64(it.value)
			continue
		}
		total += it.density * float64(remaining)
		break
	}

	return total, nil
}
