// Package graph provides the adjacency-list graph the traversal and
// shortest-path packages operate on.
//
// What
//
//   - Graph: string-identified vertices, directed or undirected (fixed at
//     construction), integer edge weights defaulting to 1.
//   - AddEdge auto-creates missing endpoints and, on undirected graphs,
//     mirrors the edge into both adjacency lists.
//   - Vertices returns IDs in insertion order; Neighbors returns a
//     vertex's out-edges in the order they were added. Every algorithm
//     downstream (bfs, dfs, dijkstra, bellmanford, toposort) inherits its
//     determinism from these two orders.
//
// Why
//
//   - An adjacency list keeps Neighbors proportional to degree, the shape
//     every traversal here wants. Parallel edges and self-loops are
//     allowed; deduplication is the caller's policy, not the graph's.
//
// Usage
//
//	g := graph.New()                       // undirected
//	_ = g.AddEdge("A", "B")                // weight 1
//	_ = g.AddEdge("A", "C", graph.WithWeight(4))
//
//	d := graph.New(graph.WithDirected())   // directed
//	_ = d.AddEdge("A", "B")                // one direction only
//
// Errors
//
//   - ErrEmptyVertexID: an empty string used as a vertex ID.
//   - ErrVertexNotFound: Neighbors on an ID never added.
//
// Graph is not safe for concurrent use.
package graph
