// Package greedy_test provides runnable examples for the greedy
// algorithms. Each example can be run via "go test -run Example" and
// shows both the code and its output.
package greedy_test

import (
	"fmt"

	"github.com/velkatra/algolith/greedy"
)

// ExampleActivitySelection schedules the largest number of
// non-overlapping activities by always keeping the earliest finisher.
func ExampleActivitySelection() {
	starts := []int{1, 3, 0, 5, 8, 5}
	finishes := []int{2, 4, 6, 7, 9, 9}

	selected, err := greedy.ActivitySelection(starts, finishes)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, a := range selected {
		fmt.Printf("[%d,%d) ", a.Start, a.Finish)
	}
	fmt.Println()
	// Output: [1,2) [3,4) [5,7) [8,9)
}

// ExampleFractionalKnapsack fills a weight budget by value density,
// slicing the last item.
func ExampleFractionalKnapsack() {
	// Densities 6, 5, 4; the budget of 50 takes the first two items
	// whole and 20 of the 30 units of the last one.
	total, err := greedy.FractionalKnapsack(
		[]int{10, 20, 30},
		[]int{60, 100, 120},
		50,
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%.1f\n", total)
	// Output: 240.0
}

// ExampleHuffman builds the classic minimum-redundancy code table:
// frequent symbols get short codes.
func ExampleHuffman() {
	codes, err := greedy.Huffman(map[string]int{
		"a": 5, "b": 9, "c": 12, "d": 13, "e": 16, "f": 45,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, sc := range codes {
		fmt.Printf("%s:%s\n", sc.Symbol, sc.Code)
	}
	// Output:
	// f:0
	// c:100
	// d:101
	// e:111
	// a:1100
	// b:1101
}
