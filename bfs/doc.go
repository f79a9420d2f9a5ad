// Package bfs provides breadth-first search over a graph.Graph,
// returning unweighted shortest-path distances, parent links, and visit
// order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a
//     start vertex. Edge weights are ignored; every edge counts as one
//     hop.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - PathTo reconstructs the start→dest hop-minimal path from Parent.
//   - Supports functional hooks at three stages: OnEnqueue, OnDequeue,
//     and OnVisit (which may abort the search with an error).
//   - Allows pruning of individual edges via WithFilterNeighbor and
//     layer capping via WithMaxDepth.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs and level layering around a root.
//
// Determinism
//
//	graph.Neighbors returns edges in the order they were added, and BFS
//	enqueues them in that order behind a FIFO container.Queue, so the
//	visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	result, err := bfs.BFS(g, "start",
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return nbr != "blocked" }),
//	)
//	if err != nil { ... }
//	path, err := result.PathTo("goal")
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an invalid Option is supplied.
//   - ErrNeighbors            if neighbor lookup fails mid-walk.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
