package strsearch

// LongestPalindromicSubstring returns the longest substring of s that
// reads the same forwards and backwards, expanding around every odd
// and even center. When several palindromes tie for the maximum
// length, the leftmost one wins. The empty string answers itself.
//
// Complexity: O(n²) time, O(1) extra space.
func LongestPalindromicSubstring(s string) string {
	if len(s) == 0 {
		return ""
	}

	// Every single byte is a palindrome, so the leftmost length-1
	// candidate seeds the running best.
	bestStart, bestLen := 0, 1
	for center := 0; center < len(s); center++ {
		// Strict improvement only, so earlier centers keep ties.
		if odd := expand(s, center, center); odd > bestLen {
			bestLen = odd
			bestStart = center - (odd-1)/2
		}
		if even := expand(s, center, center+1); even > bestLen {
			bestLen = even
			bestStart = center - (even-1)/2
		}
	}

	return s[bestStart : bestStart+bestLen]
}

// expand grows outward from the given center while the bytes mirror
// and returns the palindrome's length. left == right probes an odd
// center, right == left+1 an even one.
func expand(s string, left, right int) int {
	for left >= 0 && right < len(s) && s[left] == s[right] {
		left--
		right++
	}

	return right - left - 1
}
