// Package strsearch_test provides runnable examples for the string
// algorithms. Each example can be run via "go test -run Example" and
// shows both the code and its output.
package strsearch_test

import (
	"fmt"

	"github.com/velkatra/algolith/strsearch"
)

// ExampleKMP finds every occurrence of a pattern, overlapping ones
// included.
func ExampleKMP() {
	fmt.Println(strsearch.KMP("aaaa", "aa"))
	fmt.Println(strsearch.KMP("hello world", "world"))
	// Output:
	// [0 1 2]
	// [6]
}

// ExampleRabinKarp returns exactly the same indices as KMP, arrived at
// through a rolling hash.
func ExampleRabinKarp() {
	fmt.Println(strsearch.RabinKarp("abababab", "abab"))
	// Output: [0 2 4]
}

// ExampleLongestPalindromicSubstring expands around every center and
// keeps the leftmost longest palindrome.
func ExampleLongestPalindromicSubstring() {
	fmt.Println(strsearch.LongestPalindromicSubstring("babad"))
	fmt.Println(strsearch.LongestPalindromicSubstring("cbbd"))
	// Output:
	// bab
	// bb
}
