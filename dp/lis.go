package dp

// LongestIncreasingSubsequence returns the length of the longest
// strictly increasing subsequence of nums. An empty input answers 0.
//
// Complexity: O(n²) time, O(n) space.
func LongestIncreasingSubsequence(nums []int) int {
	if len(nums) == 0 {
		return 0
	}

	// table[i] = length of the best increasing run ending at i.
	table := make([]int, len(nums))
	for i := range table {
		table[i] = 1
	}

	best := 1
	for i := 1; i < len(nums); i++ {
		for j := 0; j < i; j++ {
			if nums[i] > nums[j] && table[j]+1 > table[i] {
				table[i] = table[j] + 1
			}
		}
		if table[i] > best {
			best = table[i]
		}
	}

	return best
}
