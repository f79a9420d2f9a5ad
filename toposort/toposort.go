package toposort

import (
	"fmt"

	"github.com/velkatra/algolith/container"
	"github.com/velkatra/algolith/graph"
)

// TopoSort returns a topological ordering of g's vertices using Kahn's
// algorithm: for every edge u→v, u appears before v in the result.
//
// The ordering is deterministic for a given construction sequence.
// If the graph contains a cycle the result is (nil, ErrCycleDetected),
// never a partial ordering.
//
// Complexity: O(V+E) time, O(V) space.
func TopoSort(g *graph.Graph) ([]string, error) {
	// 1) Validate input.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Tally in-degrees over every stored edge.
	order := g.Vertices()
	inDegree := make(map[string]int, len(order))
	for _, v := range order {
		inDegree[v] = 0
	}
	for _, u := range order {
		edges, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("toposort: failed to get neighbors of %q: %w", u, err)
		}
		for _, e := range edges {
			inDegree[e.To]++
		}
	}

	// 3) Seed the frontier with every vertex that has no incoming edge,
	//    in insertion order.
	frontier := container.NewQueue[string]()
	for _, v := range order {
		if inDegree[v] == 0 {
			frontier.Enqueue(v)
		}
	}

	// 4) Repeatedly emit a ready vertex and release its neighbors.
	result := make([]string, 0, len(order))
	for {
		u, ok := frontier.Dequeue()
		if !ok {
			break
		}
		result = append(result, u)

		edges, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("toposort: failed to get neighbors of %q: %w", u, err)
		}
		for _, e := range edges {
			inDegree[e.To]--
			if inDegree[e.To] == 0 {
				frontier.Enqueue(e.To)
			}
		}
	}

	// 5) Vertices still holding incoming edges sit on a cycle.
	if len(result) != len(order) {
		return nil, ErrCycleDetected
	}

	return result, nil
}
