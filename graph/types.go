package graph

import "errors"

var (
	// ErrEmptyVertexID is returned when a vertex or edge endpoint is the
	// empty string.
	ErrEmptyVertexID = errors.New("graph: vertex ID must be non-empty")

	// ErrVertexNotFound is returned when an operation references a vertex
	// that was never added.
	ErrVertexNotFound = errors.New("graph: vertex not found")
)

// defaultWeight applies to edges added without WithWeight.
const defaultWeight int64 = 1

// Edge is one stored edge. On undirected graphs each logical edge is
// stored twice, once per direction; Edges() folds the mirror away again.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// Option adjusts graph construction.
type Option func(*Graph)

// WithDirected makes the graph directed: AddEdge(u, v) adds only u→v.
// Direction is fixed for the lifetime of the graph.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// EdgeOption adjusts a single AddEdge call.
type EdgeOption func(*Edge)

// WithWeight sets the edge weight instead of the default 1. Negative
// weights are stored as-is; whether they are meaningful is up to the
// consuming algorithm (bellmanford accepts them, dijkstra does not).
func WithWeight(w int64) EdgeOption {
	return func(e *Edge) { e.Weight = w }
}
