package dfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("dfs: neighbor iteration error")
)

// Option configures DFS behavior via functional arguments.
type Option func(*DFSOptions)

// DFSOptions holds parameters and callbacks to customize DFS execution.
type DFSOptions struct {
	// OnVisit fires pre-order, at the moment a vertex is discovered.
	// Returning an error aborts the traversal.
	OnVisit func(id string) error

	// OnExit fires post-order, after every descendant of the vertex has
	// been fully explored. Returning an error aborts the traversal.
	OnExit func(id string) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// FullTraversal visits every component, restarting from each
	// unvisited vertex in insertion order. startID is ignored.
	FullTraversal bool

	// Iterative selects the explicit-stack engine.
	Iterative bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a DFSOptions with sane defaults:
//   - recursive engine, single-source
//   - no depth limit, no filtering
//   - nil hooks (nothing to call).
func DefaultOptions() DFSOptions {
	return DFSOptions{
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithOnVisit registers the pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit registers the post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth stops the search at the given depth (exclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *DFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *DFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithFullTraversal covers every component instead of a single root.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// WithIterative runs the traversal on an explicit stack instead of the
// call stack. The result is identical to the recursive engine's.
func WithIterative() Option {
	return func(o *DFSOptions) { o.Iterative = true }
}

// DFSResult holds the outcome of a DFS traversal:
//   - Order: vertices in pre-order (discovery) sequence.
//   - Depth: map from vertex ID to its depth in the DFS tree.
//   - Parent: map from vertex ID to the vertex that discovered it.
//   - Visited: membership set of every vertex reached.
//   - SkippedNeighbors: count of edges dropped by FilterNeighbor.
type DFSResult struct {
	Order            []string
	Depth            map[string]int
	Parent           map[string]string
	Visited          map[string]bool
	SkippedNeighbors int
}
