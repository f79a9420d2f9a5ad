package strsearch

// KMP returns the byte index of every occurrence of pattern in text,
// overlapping occurrences included, using the Knuth-Morris-Pratt
// failure table. An empty pattern yields no matches.
//
// Complexity: O(n+m) time, O(m) space.
func KMP(text, pattern string) []int {
	if len(pattern) == 0 {
		return nil
	}
	n, m := len(text), len(pattern)

	// 1) Failure table for the pattern.
	lps := computeLPS(pattern)

	// 2) Scan the text; on mismatch fall back through the table instead
	//    of rewinding the text index.
	var matches []int
	i, j := 0, 0
	for i < n {
		if text[i] == pattern[j] {
			i++
			j++
		}

		if j == m {
			// Full match ending at i; restart j where the table allows,
			// which is what picks up overlapping occurrences.
			matches = append(matches, i-j)
			j = lps[j-1]
		} else if i < n && text[i] != pattern[j] {
			if j != 0 {
				j = lps[j-1]
			} else {
				i++
			}
		}
	}

	return matches
}

// computeLPS builds the failure table: lps[i] holds the length of the
// longest proper prefix of pattern[:i+1] that is also its suffix.
func computeLPS(pattern string) []int {
	lps := make([]int, len(pattern))
	length := 0

	i := 1
	for i < len(pattern) {
		switch {
		case pattern[i] == pattern[length]:
			length++
			lps[i] = length
			i++
		case length != 0:
			// Shrink to the next shorter border and retry this byte.
			length = lps[length-1]
		default:
			lps[i] = 0
			i++
		}
	}

	return lps
}
