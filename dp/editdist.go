package dp

// EditDistance returns the Levenshtein distance between a and b: the
// minimum number of single-rune insertions, deletions, and
// substitutions (unit cost each) that turn a into b.
//
// Complexity: O(m·n) time and space over the rune counts of a and b.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	m, n := len(ra), len(rb)

	// 1) table[i][j] = distance between ra[:i] and rb[:j]; the borders
	//    are pure insertions or deletions.
	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
		table[i][0] = i
	}
	for j := 0; j <= n; j++ {
		table[0][j] = j
	}

	// 2) Matching runes cost nothing; otherwise take the cheapest of
	//    delete, insert, substitute.
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if ra[i-1] == rb[j-1] {
				table[i][j] = table[i-1][j-1]
			} else {
				table[i][j] = min(
					table[i-1][j]+1,   // delete from a
					table[i][j-1]+1,   // insert into a
					table[i-1][j-1]+1, // substitute
				)
			}
		}
	}

	return table[m][n]
}
