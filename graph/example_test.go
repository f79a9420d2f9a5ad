package graph_test

import (
	"fmt"

	"github.com/velkatra/algolith/graph"
)

// Example builds a small undirected triangle and inspects it.
func Example() {
	g := graph.New()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C", graph.WithWeight(4))
	_ = g.AddEdge("A", "C", graph.WithWeight(2))

	fmt.Println("vertices:", g.Vertices())
	for _, e := range g.Edges() {
		fmt.Printf("%s -%d- %s\n", e.From, e.Weight, e.To)
	}
	// Output:
	// vertices: [A B C]
	// A -1- B
	// A -2- C
	// B -4- C
}

// ExampleWithDirected shows that direction matters once the graph is
// directed: the reverse edge does not exist unless added.
func ExampleWithDirected() {
	g := graph.New(graph.WithDirected())
	_ = g.AddEdge("start", "finish")

	fmt.Println("start->finish:", g.HasEdge("start", "finish"))
	fmt.Println("finish->start:", g.HasEdge("finish", "start"))
	// Output:
	// start->finish: true
	// finish->start: false
}
