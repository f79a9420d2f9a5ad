package strsearch

const (
	// rkBase is the polynomial hash base: one weight per byte value.
	rkBase = 256
	// rkModulus keeps hash values small; collisions are expected and
	// resolved by direct comparison.
	rkModulus = 101
)

// RabinKarp returns the byte index of every occurrence of pattern in
// text, overlapping occurrences included, using a rolling polynomial
// hash with direct-comparison verification. Its results are always
// identical to KMP's. An empty pattern yields no matches.
//
// Complexity: O(n+m) expected time, O(1) extra space beyond the result.
func RabinKarp(text, pattern string) []int {
	n, m := len(text), len(pattern)
	if m == 0 || m > n {
		return nil
	}

	// 1) high = base^(m-1) mod q, the weight of the byte leaving the
	//    window on each slide.
	high := 1
	for i := 0; i < m-1; i++ {
		high = (high * rkBase) % rkModulus
	}

	// 2) Hash the pattern and the first window in one pass.
	patHash, winHash := 0, 0
	for i := 0; i < m; i++ {
		patHash = (rkBase*patHash + int(pattern[i])) % rkModulus
		winHash = (rkBase*winHash + int(text[i])) % rkModulus
	}

	// 3) Slide the window across the text. A hash hit is only a
	//    candidate; the direct comparison rules out collisions.
	var matches []int
	for i := 0; i+m <= n; i++ {
		if patHash == winHash && text[i:i+m] == pattern {
			matches = append(matches, i)
		}
		if i+m < n {
			winHash = (rkBase*(winHash-int(text[i])*high) + int(text[i+m])) % rkModulus
			if winHash < 0 {
				winHash += rkModulus
			}
		}
	}

	return matches
}
