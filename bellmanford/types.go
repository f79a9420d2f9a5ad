package bellmanford

import (
	"errors"
	"math"
)

// Inf is the distance assigned to vertices the source cannot reach.
const Inf int64 = math.MaxInt64

// Sentinel errors returned by the Bellman-Ford implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("bellmanford: source vertex ID is empty")

	// ErrNilGraph indicates that the provided graph pointer is nil.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("bellmanford: source vertex not found in graph")

	// ErrNegativeCycle indicates that a negative-weight cycle is reachable
	// from the source, so no finite shortest distances exist.
	ErrNegativeCycle = errors.New("bellmanford: negative-weight cycle reachable from source")
)
