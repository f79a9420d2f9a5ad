package hashtable_test

import (
	"fmt"

	"github.com/velkatra/algolith/hashtable"
)

// Example stores a few ports by service name, overwrites one, and removes
// another.
func Example() {
	ports := hashtable.New[int]()
	ports.Put("http", 80)
	ports.Put("ssh", 22)
	ports.Put("http", 8080) // overwrite

	v, ok := ports.Get("http")
	fmt.Println("http:", v, ok)

	ports.Remove("ssh")
	_, ok = ports.Get("ssh")
	fmt.Println("ssh present:", ok)
	fmt.Println("len:", ports.Len())
	// Output:
	// http: 8080 true
	// ssh present: false
	// len: 1
}
