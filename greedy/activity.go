package greedy

import "github.com/velkatra/algolith/sorting"

// ActivitySelection returns a maximum set of mutually compatible
// activities, given parallel slices of start and finish times. The
// greedy rule: always keep the activity that finishes earliest, then
// drop everything that overlaps it.
//
// Equal finish times resolve by input order (the sort is stable), so
// the result is deterministic. The two slices must have equal length.
//
// Complexity: O(n log n) time, O(n) space.
func ActivitySelection(starts, finishes []int) ([]Activity, error) {
	// 1) Validate the pairing.
	if len(starts) != len(finishes) {
		return nil, ErrLengthMismatch
	}
	if len(starts) == 0 {
		return []Activity{}, nil
	}

	// 2) Order candidates by finish time, earliest first.
	activities := make([]Activity, len(starts))
	for i := range starts {
		activities[i] = Activity{Start: starts[i], Finish: finishes[i]}
	}
	activities = sorting.MergeFunc(activities, func(a, b Activity) bool {
		return a.Finish < b.Finish
	})

	// 3) The earliest finisher is always safe to keep; after that, keep
	//    each activity that starts no earlier than the last kept finish.
	selected := []Activity{activities[0]}
	for _, a := range activities[1:] {
		if a.Start >= selected[len(selected)-1].Finish {
			selected = append(selected, a)
		}
	}

	return selected, nil
}
