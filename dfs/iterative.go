package dfs

import (
	"fmt"

	"github.com/velkatra/algolith/container"
)

// frame is one unit of pending work for the explicit-stack engine:
// either a vertex waiting to be discovered, or its pending post-order
// exit.
type frame struct {
	id     string
	depth  int
	parent string
	exit   bool
}

// traverseIterative mirrors visitRec on a container.Stack. Neighbors are
// pushed in reverse adjacency order so they pop in adjacency order,
// which makes the pre-order, parents, depths, and hook sequences
// identical to the recursive engine's.
func (w *walker) traverseIterative(root string) error {
	stack := container.NewStack[frame]()
	stack.Push(frame{id: root})

	for {
		f, ok := stack.Pop()
		if !ok {
			return nil
		}
		if f.exit {
			if err := w.onExit(f.id); err != nil {
				return err
			}
			continue
		}
		// A vertex can be stacked by several parents before its first
		// pop; later frames are stale.
		if w.res.Visited[f.id] {
			continue
		}
		if w.opts.MaxDepth > 0 && f.depth > w.opts.MaxDepth {
			continue
		}

		w.record(f.id, f.depth, f.parent)
		if err := w.onVisit(f.id); err != nil {
			return err
		}
		// The exit frame sits below the children, so it pops once the
		// whole subtree is done.
		stack.Push(frame{id: f.id, exit: true})

		edges, err := w.graph.Neighbors(f.id)
		if err != nil {
			return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, f.id, err)
		}
		for i := len(edges) - 1; i >= 0; i-- {
			nbr := edges[i].To
			if !w.opts.FilterNeighbor(f.id, nbr) {
				w.res.SkippedNeighbors++
				continue
			}
			if w.res.Visited[nbr] {
				continue
			}
			stack.Push(frame{id: nbr, depth: f.depth + 1, parent: f.id})
		}
	}
}
