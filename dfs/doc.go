// Package dfs implements depth-first search (single-source and forest)
// over a graph.Graph.
//
// What
//
//   - DFS(g, startID, opts...): pre-order traversal from a root, or the
//     whole forest via WithFullTraversal (components taken in vertex
//     insertion order).
//   - Two interchangeable engines: the default recursive walk, and an
//     explicit container.Stack engine selected by WithIterative. Both
//     produce byte-for-byte identical results; the iterative engine
//     exists for graphs deep enough to threaten the call stack.
//   - Hooks: OnVisit fires pre-order at discovery, OnExit fires
//     post-order once a vertex's subtree is exhausted. An error from
//     either aborts the traversal.
//   - Limits: WithMaxDepth caps recursion depth, WithFilterNeighbor
//     prunes edges; skipped-edge count lands in the result diagnostics.
//
// Why
//
//   - DFS is the backbone of reachability, cycle detection, and
//     topological ordering; the OnExit hook is exactly the finish-time
//     event those algorithms key off.
//
// Determinism
//
//	Neighbors are explored in adjacency (add) order, so the visit
//	sequence is fully reproducible, whichever engine runs it.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E), plus whatever the hooks cost.
//   - Memory: O(V) for the visited set and the stack (call stack or
//     explicit, depending on the engine).
//
// Usage
//
//	res, err := dfs.DFS(g, "root",
//	    dfs.WithOnExit(func(id string) error { fmt.Println("done:", id); return nil }),
//	)
//
//	// Deep graph? Same traversal, no recursion:
//	res, err = dfs.DFS(g, "root", dfs.WithIterative())
//
// Errors
//
//   - ErrGraphNil              if g is nil.
//   - ErrStartVertexNotFound   if startID is missing (single-source mode).
//   - ErrOptionViolation       if an invalid Option is supplied.
//   - Wrapped user-supplied hook errors from OnVisit / OnExit.
package dfs
