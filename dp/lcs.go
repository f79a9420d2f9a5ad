package dp

// LongestCommonSubsequence returns the length of the longest sequence
// of runes that appears in both a and b in order, not necessarily
// contiguously.
//
// Complexity: O(m·n) time and space over the rune counts of a and b.
func LongestCommonSubsequence(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	m, n := len(ra), len(rb)

	// table[i][j] = LCS length of ra[:i] and rb[:j].
	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if ra[i-1] == rb[j-1] {
				// Matching runes extend the best shorter-prefix answer.
				table[i][j] = table[i-1][j-1] + 1
			} else {
				table[i][j] = max(table[i-1][j], table[i][j-1])
			}
		}
	}

	return table[m][n]
}
