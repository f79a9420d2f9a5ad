package sorting

// Counting returns a sorted copy of arr using counting sort: tally how
// often each value occurs, then emit values in order of the tally index.
// No comparisons happen at all, which is why it beats the comparison
// sorts whenever the value range k is modest.
//
// Only non-negative integers can index the tally, so any negative input
// yields ErrNegativeValue and a nil slice.
//
// Complexity: O(n + k) time, O(k) space, where k is the maximum value.
func Counting(arr []int) ([]int, error) {
	if len(arr) == 0 {
		return []int{}, nil
	}

	max := arr[0]
	for _, v := range arr {
		if v < 0 {
			return nil, ErrNegativeValue
		}
		if v > max {
			max = v
		}
	}

	counts := make([]int, max+1)
	for _, v := range arr {
		counts[v]++
	}

	out := make([]int, 0, len(arr))
	for v, c := range counts {
		for ; c > 0; c-- {
			out = append(out, v)
		}
	}

	return out, nil
}
