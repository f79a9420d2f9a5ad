// Package bellmanford implements the Bellman-Ford single-source
// shortest-path algorithm on weighted graphs.
//
// Unlike Dijkstra, Bellman-Ford tolerates negative edge weights: it
// relaxes every stored edge V−1 times, which is enough for shortest
// distances to settle in any graph without a negative cycle. One extra
// pass then probes for edges that still improve — if any does, a
// negative-weight cycle is reachable from the source and no finite
// shortest distances exist, so the algorithm reports ErrNegativeCycle
// instead of a distance map.
//
// Complexity:
//
//   - Time:  O(V · E)
//   - V−1 relaxation rounds, each scanning every stored edge.
//   - One extra detection round over the same edges.
//   - Space: O(V + E)
//   - O(V) for the distance map.
//   - O(E) for the edge snapshot taken up front.
//
// Notes on implementation choices:
//
//   - Edges are snapshotted once in vertex-insertion order, so the
//     relaxation sequence (and therefore any intermediate state) is
//     deterministic for a given construction order.
//   - Relaxation out of a still-unreachable vertex (distance Inf) is
//     skipped; this is both semantically required and an int64
//     overflow guard.
//   - On an undirected graph every stored edge exists in both
//     directions, so a single negative undirected edge already forms a
//     negative cycle (u→v→u). Negative weights are only meaningful on
//     directed graphs.
//
// Errors (sentinel):
//
//   - ErrEmptySource    if the provided source ID is empty.
//   - ErrNilGraph       if the provided graph pointer is nil.
//   - ErrVertexNotFound if the source vertex does not exist in the graph.
//   - ErrNegativeCycle  if a negative-weight cycle is reachable from the
//     source.
//
// Example usage:
//
//	dist, err := bellmanford.BellmanFord(g, "A")
//	if errors.Is(err, bellmanford.ErrNegativeCycle) { ... }
//	fmt.Printf("distance to B: %d\n", dist["B"])
//
// Unreachable vertices keep distance Inf (math.MaxInt64). A negative
// cycle that the source cannot reach does not trigger ErrNegativeCycle;
// its vertices simply stay at Inf.
package bellmanford
