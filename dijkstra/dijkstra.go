package dijkstra

import (
	"fmt"

	"github.com/velkatra/algolith/binheap"
	"github.com/velkatra/algolith/graph"
)

// Dijkstra computes shortest distances from the source vertex
// (Options.Source) to all other vertices in the weighted graph g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (Inf if unreachable).
//   - prev: predecessor map if WithReturnPath was given (nil otherwise).
//     prev[v] == u means the shortest path to v arrives through u;
//     for unreachable v, prev[v] == "".
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//
// Edge weights must be non-negative; that is the caller's contract and
// is not verified here. Feed graphs with negative weights to bellmanford.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *graph.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 4) Validate Source exists in the graph
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 5) Prepare runner state.
	V := g.NumVertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		visited: make(map[string]bool, V),
		pq:      binheap.New(byDistance),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, V)
	}

	// 6) Initialize state and run the main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// nodeItem represents a vertex and its tentative distance from the
// source, as stored in the priority queue.
type nodeItem struct {
	id   string
	dist int64
}

// byDistance orders heap entries by ascending tentative distance.
func byDistance(a, b nodeItem) bool { return a.dist < b.dist }

// runner holds the mutable state for a single Dijkstra execution:
// the best-known distances, the optional predecessor map (allocated only
// under ReturnPath), the finalized set, and the lazy min-heap frontier.
type runner struct {
	g       *graph.Graph
	options Options
	dist    map[string]int64
	prev    map[string]string
	visited map[string]bool
	pq      *binheap.Heap[nodeItem]
}

// init seeds distances at Inf, the source at zero, and pushes the source
// onto the heap.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = Inf
		if r.prev != nil {
			r.prev[v] = "" // no predecessor yet
		}
	}
	r.dist[r.options.Source] = 0
	r.pq.Push(nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unfinalized vertex and relaxes
// its outgoing edges. It stops when the heap drains or the minimum
// distance exceeds MaxDistance.
func (r *runner) process() error {
	for {
		item, ok := r.pq.Pop()
		if !ok {
			return nil
		}

		// 1) Stale lazy-decrease-key entry: this vertex was finalized
		//    through a shorter path already.
		if r.visited[item.id] {
			continue
		}

		// 2) Beyond the exploration cap: nothing closer remains in the
		//    heap, so stop entirely.
		if item.dist > r.options.MaxDistance {
			return nil
		}

		// 3) Finalize and relax.
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}
}

// relax examines each edge out of u and improves neighbor distances.
// Assumes dist[u] is final.
func (r *runner) relax(u string) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var newDist int64
	for _, e := range edges {
		// Impassable edge under the threshold option.
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		newDist = r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only; equal-distance duplicates would just
		// bloat the heap.
		if newDist >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = newDist
		if r.prev != nil {
			r.prev[e.To] = u
		}
		r.pq.Push(nodeItem{id: e.To, dist: newDist})
	}

	return nil
}
