package dp

// CoinChange returns the minimum number of coins, drawn with repetition
// from the given denominations, that sum exactly to amount. It returns
// -1 when no combination works (including any negative amount).
// Denominations must be positive.
//
// Complexity: O(amount·len(coins)) time, O(amount) space.
func CoinChange(coins []int, amount int) int {
	if amount < 0 {
		return -1
	}

	// amount+1 acts as infinity: with positive denominations no solution
	// ever uses more than amount coins.
	infeasible := amount + 1
	table := make([]int, amount+1)
	for i := 1; i <= amount; i++ {
		table[i] = infeasible
	}

	for i := 1; i <= amount; i++ {
		for _, coin := range coins {
			if coin <= i && table[i-coin]+1 < table[i] {
				table[i] = table[i-coin] + 1
			}
		}
	}

	if table[amount] == infeasible {
		return -1
	}

	return table[amount]
}
