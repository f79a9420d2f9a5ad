// Package toposort implements topological ordering of directed graphs
// using Kahn's algorithm.
//
// A topological order lists the vertices of a DAG so that every edge
// points forward: for each edge u→v, u appears before v. Kahn's
// algorithm builds the order by repeatedly removing vertices with no
// remaining incoming edges. If the graph contains a cycle, some
// vertices never shed their last incoming edge and the order comes up
// short; in that case ErrCycleDetected is returned instead of a
// truncated ordering.
//
// Complexity:
//
//   - Time:  O(V + E)
//   - One pass over all edges to tally in-degrees.
//   - Each vertex enters and leaves the frontier at most once.
//   - Each edge is decremented exactly once.
//   - Space: O(V)
//   - In-degree table, frontier queue, and output slice.
//
// Determinism: the frontier is a FIFO queue (container.Queue) seeded in
// vertex-insertion order, and neighbors are scanned in edge-insertion
// order. Two runs over the same construction sequence produce the same
// ordering; among vertices that become ready simultaneously, the one
// inserted into the graph earlier comes first.
//
// Undirected graphs: an undirected edge is stored in both directions,
// which makes it a two-vertex cycle under this algorithm. Any
// undirected graph with at least one edge therefore yields
// ErrCycleDetected; only vertices matter in the edgeless case.
//
// Errors (sentinel):
//
//   - ErrNilGraph      if the provided graph pointer is nil.
//   - ErrCycleDetected if the graph contains a directed cycle.
//
// Example usage:
//
//	order, err := toposort.TopoSort(g)
//	if errors.Is(err, toposort.ErrCycleDetected) { ... }
//	fmt.Println(order)
package toposort
