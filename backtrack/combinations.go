package backtrack

// Combinations returns every way to choose k values from 1..n, in
// lexicographic order. Choosing zero values has exactly one answer,
// the empty combination; k < 0 or k > n has none.
//
// Complexity: O(k·C(n,k)) time and output size.
func Combinations(n, k int) [][]int {
	// No k-subset exists outside 0 ≤ k ≤ n; skip the search entirely.
	if k < 0 || k > n {
		return nil
	}

	var result [][]int
	var path []int

	var backtrack func(start int)
	backtrack = func(start int) {
		// 1) Path filled: record one complete combination.
		if len(path) == k {
			snapshot := make([]int, k)
			copy(snapshot, path)
			result = append(result, snapshot)
			return
		}

		// 2) Extend with each candidate ≥ start; starting above the last
		//    pick keeps combinations strictly ascending and duplicate-free.
		for i := start; i <= n; i++ {
			path = append(path, i)
			backtrack(i + 1)
			path = path[:len(path)-1]
		}
	}
	backtrack(1)

	return result
}
