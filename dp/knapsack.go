package dp

// Knapsack01 returns the largest total value achievable by picking
// items, each at most once, whose combined weight does not exceed
// capacity. weights and values must have equal length and weights must
// be non-negative; a negative capacity fits nothing and yields 0.
//
// Complexity: O(n·W) time and space for n items and capacity W.
func Knapsack01(weights, values []int, capacity int) int {
	if capacity < 0 {
		return 0
	}

	// 1) table[i][w] = best value using the first i items within weight w.
	n := len(weights)
	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, capacity+1)
	}

	// 2) Each item either stays out (row above) or goes in (row above at
	//    the remaining capacity, plus its value).
	for i := 1; i <= n; i++ {
		for w := 0; w <= capacity; w++ {
			if weights[i-1] <= w {
				table[i][w] = max(table[i-1][w], table[i-1][w-weights[i-1]]+values[i-1])
			} else {
				table[i][w] = table[i-1][w]
			}
		}
	}

	return table[n][capacity]
}
