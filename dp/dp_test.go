package dp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velkatra/algolith/dp"
)

// ------------------------------------------------------------------------
// Fibonacci
// ------------------------------------------------------------------------

func TestFibonacci_KnownValues(t *testing.T) {
	cases := []struct {
		n    int
		want int64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{10, 55},
		{20, 6765},
		{50, 12586269025},
		{92, 7540113804746346429}, // largest value representable in int64
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, dp.Fibonacci(tc.n), "Fibonacci(%d)", tc.n)
	}
}

func TestFibonacci_VariantsAgree(t *testing.T) {
	for n := 0; n <= 92; n++ {
		assert.Equal(t, dp.Fibonacci(n), dp.FibonacciOptimized(n),
			"variants disagree at n=%d", n)
	}
}

// ------------------------------------------------------------------------
// Knapsack01
// ------------------------------------------------------------------------

func TestKnapsack01(t *testing.T) {
	cases := []struct {
		name     string
		weights  []int
		values   []int
		capacity int
		want     int
	}{
		{"classic", []int{1, 3, 4, 5}, []int{1, 4, 5, 7}, 7, 9},
		{"textbook", []int{10, 20, 30}, []int{60, 100, 120}, 50, 220},
		{"zero capacity", []int{1, 2}, []int{10, 20}, 0, 0},
		{"negative capacity", []int{1}, []int{10}, -3, 0},
		{"no items", nil, nil, 10, 0},
		{"single item fits", []int{4}, []int{40}, 5, 40},
		{"single item too heavy", []int{6}, []int{40}, 5, 0},
		{"all items fit", []int{1, 2, 3}, []int{6, 10, 12}, 10, 28},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dp.Knapsack01(tc.weights, tc.values, tc.capacity))
		})
	}
}

// ------------------------------------------------------------------------
// LongestCommonSubsequence
// ------------------------------------------------------------------------

func TestLongestCommonSubsequence(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want int
	}{
		{"classic", "ABCDGH", "AEDFHR", 3}, // ADH
		{"dna", "AGGTAB", "GXTXAYB", 4},    // GTAB
		{"both empty", "", "", 0},
		{"one empty", "", "xyz", 0},
		{"identical", "golang", "golang", 6},
		{"disjoint", "abc", "def", 0},
		{"runes", "héllo", "hèllo", 4}, // accent mismatch breaks one rune
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dp.LongestCommonSubsequence(tc.a, tc.b))
		})
	}
}

func TestLongestCommonSubsequence_Symmetric(t *testing.T) {
	assert.Equal(t,
		dp.LongestCommonSubsequence("ABCDGH", "AEDFHR"),
		dp.LongestCommonSubsequence("AEDFHR", "ABCDGH"))
}

// ------------------------------------------------------------------------
// EditDistance
// ------------------------------------------------------------------------

func TestEditDistance(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want int
	}{
		{"classic", "kitten", "sitting", 3},
		{"both empty", "", "", 0},
		{"insert all", "", "abc", 3},
		{"delete all", "abc", "", 3},
		{"identical", "same", "same", 0},
		{"overlap", "flaw", "lawn", 2},
		{"single substitution", "cat", "cut", 1},
		{"runes", "café", "cafe", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dp.EditDistance(tc.a, tc.b))
		})
	}
}

func TestEditDistance_Symmetric(t *testing.T) {
	// Insertions and deletions swap roles, the distance stays the same.
	assert.Equal(t, dp.EditDistance("kitten", "sitting"), dp.EditDistance("sitting", "kitten"))
}

// ------------------------------------------------------------------------
// CoinChange
// ------------------------------------------------------------------------

func TestCoinChange(t *testing.T) {
	cases := []struct {
		name   string
		coins  []int
		amount int
		want   int
	}{
		{"classic", []int{1, 2, 5}, 11, 3}, // 5+5+1
		{"exact single coin", []int{1, 2, 5}, 5, 1},
		{"zero amount", []int{1, 2, 5}, 0, 0},
		{"infeasible parity", []int{2, 4}, 7, -1},
		{"infeasible small", []int{2}, 3, -1},
		{"no coins", nil, 5, -1},
		{"no coins zero amount", nil, 0, 0},
		{"negative amount", []int{1}, -4, -1},
		{"two denominations", []int{3, 7}, 13, 3}, // 3+3+7
		{"greedy trap", []int{1, 3, 4}, 6, 2},     // 3+3 beats 4+1+1
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dp.CoinChange(tc.coins, tc.amount))
		})
	}
}

// ------------------------------------------------------------------------
// LongestIncreasingSubsequence
// ------------------------------------------------------------------------

func TestLongestIncreasingSubsequence(t *testing.T) {
	cases := []struct {
		name string
		nums []int
		want int
	}{
		{"classic", []int{10, 9, 2, 5, 3, 7, 101, 18}, 4}, // 2,3,7,18
		{"empty", nil, 0},
		{"single", []int{5}, 1},
		{"already increasing", []int{1, 2, 3, 4, 5}, 5},
		{"strictly decreasing", []int{9, 7, 5, 3}, 1},
		{"all equal", []int{7, 7, 7}, 1}, // strict increase required
		{"zigzag", []int{0, 1, 0, 3, 2, 3}, 4},
		{"negatives", []int{-5, -3, -4, -1}, 3}, // -5,-3,-1
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dp.LongestIncreasingSubsequence(tc.nums))
		})
	}
}
