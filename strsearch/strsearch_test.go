package strsearch_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkatra/algolith/strsearch"
)

// naiveMatches is the quadratic reference matcher both fast matchers
// must agree with.
func naiveMatches(text, pattern string) []int {
	if len(pattern) == 0 {
		return nil
	}
	var out []int
	for i := 0; i+len(pattern) <= len(text); i++ {
		if text[i:i+len(pattern)] == pattern {
			out = append(out, i)
		}
	}

	return out
}

// matcherCases is shared by the KMP and Rabin-Karp tests: the two
// functions promise identical results.
var matcherCases = []struct {
	name    string
	text    string
	pattern string
	want    []int
}{
	{"overlapping runs", "aaaa", "aa", []int{0, 1, 2}},
	{"single hit", "hello world", "world", []int{6}},
	{"periodic overlap", "abababab", "abab", []int{0, 2, 4}},
	{"pattern equals text", "abc", "abc", []int{0}},
	{"no hit", "abc", "d", nil},
	{"pattern longer than text", "abc", "abcd", nil},
	{"empty text", "", "a", nil},
	{"empty pattern", "abc", "", nil},
	{"both empty", "", "", nil},
	{"interior repeats", "mississippi", "issi", []int{1, 4}},
	{"shared boundary", "aabaacaadaabaaba", "aaba", []int{0, 9, 12}},
	{"hit at both ends", "xabcyabc", "abc", []int{1, 5}},
}

func TestKMP(t *testing.T) {
	for _, tc := range matcherCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, strsearch.KMP(tc.text, tc.pattern))
		})
	}
}

func TestRabinKarp(t *testing.T) {
	for _, tc := range matcherCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, strsearch.RabinKarp(tc.text, tc.pattern))
		})
	}
}

func TestMatchers_AgreeOnRandomInputs(t *testing.T) {
	// A two-letter alphabet forces heavy overlap and plenty of rolling
	// hash collisions (only 101 hash values exist).
	rng := rand.New(rand.NewSource(17))
	alphabet := []byte("ab")

	randomWord := func(n int) string {
		word := make([]byte, n)
		for i := range word {
			word[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(word)
	}

	for trial := 0; trial < 200; trial++ {
		text := randomWord(rng.Intn(61))
		pattern := randomWord(1 + rng.Intn(5))

		want := naiveMatches(text, pattern)
		if diff := cmp.Diff(want, strsearch.KMP(text, pattern)); diff != "" {
			t.Fatalf("trial %d: KMP(%q, %q) mismatch (-naive +kmp):\n%s", trial, text, pattern, diff)
		}
		if diff := cmp.Diff(want, strsearch.RabinKarp(text, pattern)); diff != "" {
			t.Fatalf("trial %d: RabinKarp(%q, %q) mismatch (-naive +rk):\n%s", trial, text, pattern, diff)
		}
	}
}

// ------------------------------------------------------------------------
// LongestPalindromicSubstring
// ------------------------------------------------------------------------

func TestLongestPalindromicSubstring(t *testing.T) {
	cases := []struct {
		name string
		s    string
		want string
	}{
		{"empty", "", ""},
		{"single", "a", "a"},
		{"no repeats", "abcd", "a"}, // all length-1, leftmost wins
		{"odd center", "babad", "bab"},
		{"even center", "cbbd", "bb"},
		{"leftmost tie", "aabb", "aa"},
		{"whole string", "aaaa", "aaaa"},
		{"embedded long", "forgeeksskeegfor", "geeksskeeg"},
		{"fruit", "bananas", "anana"},
		{"ends", "abacdfgdcaba", "aba"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, strsearch.LongestPalindromicSubstring(tc.s))
		})
	}
}

// bruteLongestPalindrome scans all substrings longest-first,
// leftmost-first, and returns the first palindrome.
func bruteLongestPalindrome(s string) string {
	isPal := func(w string) bool {
		for i, j := 0, len(w)-1; i < j; i, j = i+1, j-1 {
			if w[i] != w[j] {
				return false
			}
		}
		return true
	}
	for length := len(s); length > 0; length-- {
		for start := 0; start+length <= len(s); start++ {
			if isPal(s[start : start+length]) {
				return s[start : start+length]
			}
		}
	}

	return ""
}

func TestLongestPalindromicSubstring_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	alphabet := []byte("abc")

	for trial := 0; trial < 150; trial++ {
		word := make([]byte, rng.Intn(13))
		for i := range word {
			word[i] = alphabet[rng.Intn(len(alphabet))]
		}
		s := string(word)

		want := bruteLongestPalindrome(s)
		got := strsearch.LongestPalindromicSubstring(s)
		require.Equal(t, want, got, "trial %d: input %q", trial, s)
	}
}
