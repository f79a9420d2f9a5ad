package backtrack

// Permutations returns every ordering of nums. Elements are treated as
// distinct positions, so duplicated values yield duplicated orderings.
// The empty input has exactly one permutation: the empty one.
//
// Orderings appear in the sequence produced by picking remaining
// elements left to right, so sorted input yields lexicographic output.
//
// Complexity: O(n·n!) time and output size.
func Permutations(nums []int) [][]int {
	var result [][]int
	var path []int

	var backtrack func(remaining []int)
	backtrack = func(remaining []int) {
		// 1) No elements left: the path is one complete ordering.
		if len(remaining) == 0 {
			snapshot := make([]int, len(path))
			copy(snapshot, path)
			result = append(result, snapshot)
			return
		}

		// 2) Try each remaining element as the next position, recursing
		//    on the rest and undoing the choice afterwards.
		for i := range remaining {
			path = append(path, remaining[i])
			rest := make([]int, 0, len(remaining)-1)
			rest = append(rest, remaining[:i]...)
			rest = append(rest, remaining[i+1:]...)
			backtrack(rest)
			path = path[:len(path)-1]
		}
	}
	backtrack(nums)

	return result
}
