package toposort

import "errors"

// Sentinel errors returned by TopoSort.
var (
	// ErrNilGraph indicates that the provided graph pointer is nil.
	ErrNilGraph = errors.New("toposort: graph is nil")

	// ErrCycleDetected indicates that the graph contains a directed cycle,
	// so no topological ordering exists.
	ErrCycleDetected = errors.New("toposort: graph contains a cycle")
)
