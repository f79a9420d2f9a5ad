// Package dp_test provides runnable examples for the dynamic
// programming procedures. Each example can be run via
// "go test -run Example" and shows both the code and its output.
package dp_test

import (
	"fmt"

	"github.com/velkatra/algolith/dp"
)

// ExampleFibonacci computes a Fibonacci number with the tabulated
// variant; FibonacciOptimized returns the same value in O(1) space.
func ExampleFibonacci() {
	fmt.Println(dp.Fibonacci(10))
	fmt.Println(dp.FibonacciOptimized(10))
	// Output:
	// 55
	// 55
}

// ExampleKnapsack01 picks the best subset of items for a weight budget.
func ExampleKnapsack01() {
	weights := []int{1, 3, 4, 5}
	values := []int{1, 4, 5, 7}
	// Weights 3+4 fill the budget of 7 exactly, for value 4+5.
	fmt.Println(dp.Knapsack01(weights, values, 7))
	// Output: 9
}

// ExampleCoinChange finds the fewest coins summing to an amount.
func ExampleCoinChange() {
	// 11 = 5 + 5 + 1.
	fmt.Println(dp.CoinChange([]int{1, 2, 5}, 11))
	// Amounts no combination reaches answer -1.
	fmt.Println(dp.CoinChange([]int{2}, 3))
	// Output:
	// 3
	// -1
}

// ExampleEditDistance measures how many single-rune edits separate two
// words.
func ExampleEditDistance() {
	// kitten → sitten → sittin → sitting.
	fmt.Println(dp.EditDistance("kitten", "sitting"))
	// Output: 3
}

// ExampleLongestCommonSubsequence measures shared in-order content.
func ExampleLongestCommonSubsequence() {
	// "ADH" runs through both strings.
	fmt.Println(dp.LongestCommonSubsequence("ABCDGH", "AEDFHR"))
	// Output: 3
}

// ExampleLongestIncreasingSubsequence finds the longest strictly
// rising run.
func ExampleLongestIncreasingSubsequence() {
	// 2, 3, 7, 18 (or 101) rises through the slice.
	fmt.Println(dp.LongestIncreasingSubsequence([]int{10, 9, 2, 5, 3, 7, 101, 18}))
	// Output: 4
}
