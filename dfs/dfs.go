package dfs

import (
	"fmt"

	"github.com/velkatra/algolith/graph"
)

// walker encapsulates mutable DFS state shared by both engines.
type walker struct {
	graph *graph.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g. With WithFullTraversal it covers
// every component and ignores startID; otherwise it explores only the
// tree rooted at startID. Neighbors are taken in adjacency order, so the
// pre-order in DFSResult.Order is deterministic.
func DFS(g *graph.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1) Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Apply options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3) Single-source mode: verify startID
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 4) Initialize result with capacity hints
	n := g.NumVertices()
	w := &walker{
		graph: g,
		opts:  o,
		res: &DFSResult{
			Order:   make([]string, 0, n),
			Depth:   make(map[string]int, n),
			Parent:  make(map[string]string, n),
			Visited: make(map[string]bool, n),
		},
	}

	engine := w.traverse
	if o.Iterative {
		engine = w.traverseIterative
	}

	// 5) Traverse: forest or single tree
	if o.FullTraversal {
		for _, v := range g.Vertices() {
			if !w.res.Visited[v] {
				if err := engine(v); err != nil {
					return w.res, err
				}
			}
		}
		return w.res, nil
	}

	return w.res, engine(startID)
}

// traverse runs the recursive engine from root.
func (w *walker) traverse(root string) error {
	return w.visitRec(root, 0, "")
}

// visitRec visits id at the given depth, then recurses into its
// unvisited neighbors in adjacency order.
func (w *walker) visitRec(id string, depth int, parent string) error {
	if w.opts.MaxDepth > 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.record(id, depth, parent)
	if err := w.onVisit(id); err != nil {
		return err
	}

	edges, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, id, err)
	}
	for _, e := range edges {
		nbr := e.To
		if !w.opts.FilterNeighbor(id, nbr) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nbr] {
			continue
		}
		if err = w.visitRec(nbr, depth+1, id); err != nil {
			return err
		}
	}

	return w.onExit(id)
}

// record marks id visited and stores its pre-order bookkeeping.
func (w *walker) record(id string, depth int, parent string) {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.res.Order = append(w.res.Order, id)
}

func (w *walker) onVisit(id string) error {
	if w.opts.OnVisit == nil {
		return nil
	}
	if err := w.opts.OnVisit(id); err != nil {
		return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
	}
	return nil
}

func (w *walker) onExit(id string) error {
	if w.opts.OnExit == nil {
		return nil
	}
	if err := w.opts.OnExit(id); err != nil {
		return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
	}
	return nil
}
