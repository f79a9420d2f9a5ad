package bellmanford

import (
	"fmt"

	"github.com/velkatra/algolith/graph"
)

// arc is one stored directed edge. For undirected graphs the snapshot
// holds both directions of every edge, which is exactly what the
// relaxation rounds need.
type arc struct {
	from   string
	to     string
	weight int64
}

// BellmanFord computes shortest distances from source to every vertex of
// g, tolerating negative edge weights on directed graphs.
//
// It returns a map holding one entry per vertex; vertices the source
// cannot reach keep the value Inf. If a negative-weight cycle is
// reachable from the source, BellmanFord returns (nil, ErrNegativeCycle)
// and never a partial distance map.
//
// Complexity: O(V·E) time, O(V+E) space.
func BellmanFord(g *graph.Graph, source string) (map[string]int64, error) {
	// 1) Validate inputs.
	if source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, ErrVertexNotFound
	}

	// 2) Snapshot every stored edge in vertex-insertion order. Undirected
	//    graphs store both directions, so no mirroring is needed here.
	order := g.Vertices()
	stored := g.NumEdges()
	if !g.Directed() {
		stored *= 2
	}
	arcs := make([]arc, 0, stored)
	for _, u := range order {
		edges, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("bellmanford: failed to get neighbors of %q: %w", u, err)
		}
		for _, e := range edges {
			arcs = append(arcs, arc{from: u, to: e.To, weight: e.Weight})
		}
	}

	// 3) Initialize tentative distances: source at 0, everything else Inf.
	dist := make(map[string]int64, len(order))
	for _, v := range order {
		dist[v] = Inf
	}
	dist[source] = 0

	// 4) Relax every edge V−1 times. A shortest path visits at most V−1
	//    edges, so after these rounds all distances have settled unless a
	//    negative cycle keeps feeding improvements.
	var newDist int64
	for round := 1; round < len(order); round++ {
		for _, a := range arcs {
			// Nothing to relax from an unreachable vertex; skipping also
			// prevents Inf + weight from overflowing int64.
			if dist[a.from] == Inf {
				continue
			}
			newDist = dist[a.from] + a.weight
			if newDist < dist[a.to] {
				dist[a.to] = newDist
			}
		}
	}

	// 5) Detection round: any edge that still improves lies on (or hangs
	//    off) a negative cycle reachable from the source.
	for _, a := range arcs {
		if dist[a.from] == Inf {
			continue
		}
		if dist[a.from]+a.weight < dist[a.to] {
			return nil, ErrNegativeCycle
		}
	}

	return dist, nil
}
