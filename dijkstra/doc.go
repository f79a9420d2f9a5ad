// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a source vertex to every
// reachable vertex, processing vertices in order of increasing distance
// behind a binheap min-heap and relaxing outgoing edges as each vertex
// is finalized.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted from the heap at most once (V extracts).
//   - Each edge relaxation may push into the heap (up to E pushes).
//   - Each heap operation costs O(log N), N ≤ V + E, simplified O(log V).
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps.
//   - O(E) in the heap worst case (lazy decrease-key).
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: a shorter path pushes a fresh heap entry; stale
//     entries are recognized by the visited set and skipped on pop.
//   - Edges with weight ≥ InfEdgeThreshold are treated as impassable.
//   - Exploration stops once the minimum heap distance exceeds
//     MaxDistance.
//   - Non-negative weights are a precondition, not a runtime check: a
//     graph with negative edges yields undefined distances here, and
//     belongs to bellmanford instead.
//
// Options:
//
//   - Source:                 ID of the starting vertex (required).
//   - WithReturnPath:         also return the predecessor map.
//   - WithMaxDistance(x):     vertices farther than x are not explored.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are skipped.
//
// Errors (sentinel):
//
//   - ErrEmptySource    if the provided source ID is empty.
//   - ErrNilGraph       if the provided graph pointer is nil.
//   - ErrVertexNotFound if the source vertex does not exist in the graph.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g,
//	    dijkstra.Source("A"),
//	    dijkstra.WithReturnPath(),
//	)
//	if err != nil { ... }
//	fmt.Printf("distance to B: %d via %s\n", dist["B"], prev["B"])
//
// Unreachable vertices keep distance Inf (math.MaxInt64) and an empty
// predecessor.
package dijkstra
