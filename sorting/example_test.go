package sorting_test

import (
	"fmt"

	"github.com/velkatra/algolith/sorting"
)

// ExampleMerge sorts a slice without touching the original.
func ExampleMerge() {
	input := []int{64, 34, 25, 12, 22, 11, 90}
	sorted := sorting.Merge(input)

	fmt.Println("sorted:  ", sorted)
	fmt.Println("original:", input)
	// Output:
	// sorted:   [11 12 22 25 34 64 90]
	// original: [64 34 25 12 22 11 90]
}

// ExampleQuickFunc sorts structs by a field, descending, with a custom
// comparator.
func ExampleQuickFunc() {
	type city struct {
		name string
		pop  int
	}
	cities := []city{
		{"Riga", 6},
		{"Vilnius", 5},
		{"Tallinn", 4},
	}

	byPopAsc := func(a, b city) bool { return a.pop < b.pop }
	for _, c := range sorting.QuickFunc(cities, byPopAsc) {
		fmt.Println(c.name, c.pop)
	}
	// Output:
	// Tallinn 4
	// Vilnius 5
	// Riga 6
}

// ExampleCounting shows the non-comparison sort and its guard against
// negative values.
func ExampleCounting() {
	sorted, err := sorting.Counting([]int{4, 2, 2, 8, 3, 3, 1})
	fmt.Println(sorted, err)

	_, err = sorting.Counting([]int{1, -1})
	fmt.Println(err)
	// Output:
	// [1 2 2 3 3 4 8] <nil>
	// sorting: counting sort requires non-negative integers
}
