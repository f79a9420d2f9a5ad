// Package strsearch implements classic string algorithms: KMP and
// Rabin-Karp substring matching, and longest-palindromic-substring by
// center expansion.
//
// All three operate on bytes, and match indices are byte offsets, the
// same convention the strings package uses. Multi-byte runes are
// matched byte for byte, which is exact for substring search (UTF-8 is
// self-synchronizing for whole-string patterns) but means palindromes
// are judged on raw bytes.
//
// Matching contract shared by KMP and RabinKarp:
//
//   - Every occurrence is reported, including overlapping ones:
//     searching "aaaa" for "aa" yields [0 1 2].
//   - No occurrences yields an empty result.
//   - An empty pattern yields an empty result rather than matching
//     everywhere.
//   - Both functions always agree: same text and pattern, same indices.
//
// Complexity:
//
//   - KMP: O(n+m) worst case; the failure table never re-examines a
//     text byte.
//   - RabinKarp: O(n+m) expected; hash hits are verified by direct
//     comparison, so collisions cost O(m) each but never produce false
//     matches.
//   - LongestPalindromicSubstring: O(n²) time, O(1) extra space; the
//     leftmost maximal palindrome wins ties.
//
// There are no error returns and no options here: each function is a
// pure total function of its inputs.
package strsearch
