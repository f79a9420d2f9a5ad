package dp

// Fibonacci returns the n-th Fibonacci number (F(0)=0, F(1)=1) by
// filling the full table of earlier terms.
//
// Values are exact for 0 ≤ n ≤ 92; larger n overflows int64.
// Complexity: O(n) time, O(n) space.
func Fibonacci(n int) int64 {
	if n <= 1 {
		return int64(n)
	}

	table := make([]int64, n+1)
	table[1] = 1
	for i := 2; i <= n; i++ {
		table[i] = table[i-1] + table[i-2]
	}

	return table[n]
}

// FibonacciOptimized returns the same value as Fibonacci while keeping
// only the last two terms instead of the whole table.
//
// Complexity: O(n) time, O(1) space.
func FibonacciOptimized(n int) int64 {
	if n <= 1 {
		return int64(n)
	}

	prev, curr := int64(0), int64(1)
	for i := 2; i <= n; i++ {
		prev, curr = curr, prev+curr
	}

	return curr
}
