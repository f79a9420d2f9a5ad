// Package dp collects classic dynamic-programming procedures: pure
// functions over numeric or string inputs that fill a table of
// subproblem answers bottom-up and read the final answer off the table.
//
// Catalogue:
//
//	| Function                      | Answer                             | Time       | Space  |
//	|-------------------------------+------------------------------------+------------+--------|
//	| Fibonacci                     | n-th Fibonacci number              | O(n)       | O(n)   |
//	| FibonacciOptimized            | same, rolling pair of terms        | O(n)       | O(1)   |
//	| Knapsack01                    | best value within weight capacity  | O(n*W)     | O(n*W) |
//	| LongestCommonSubsequence      | length of longest shared sequence  | O(m*n)     | O(m*n) |
//	| EditDistance                  | Levenshtein distance               | O(m*n)     | O(m*n) |
//	| CoinChange                    | fewest coins for exact amount      | O(a*coins) | O(a)   |
//	| LongestIncreasingSubsequence  | length of longest increasing run   | O(n**2)    | O(n)   |
//
// All functions are deterministic, allocate only their tables, and
// never mutate their inputs. String inputs are compared rune-wise, so
// multi-byte characters count as single units.
//
// There are no error returns here: infeasible coin amounts answer -1,
// and everything else is total over its documented domain. Fibonacci
// values are exact for 0 ≤ n ≤ 92; beyond that they overflow int64.
package dp
