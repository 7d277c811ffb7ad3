package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphsearch/core"
)

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// frame is one pending explicit-stack entry.
type frame struct {
	v      int
	depth  int
	parent int // -1 for a root
}

// DFS performs depth-first search on g from start and returns the emission
// order. The start is always emitted; any other vertex already flagged on g
// is skipped. Flags set by the walk stay set.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if start < 0 || start >= g.VertexCount() {
		return nil, fmt.Errorf("dfs: start %d: %w", start, core.ErrVertexOutOfBounds)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	// 3. Traverse: the start is always emitted, even if already flagged
	if err := w.walk(start); err != nil {
		return w.res, err
	}
	// 4. Forest mode: restart from every vertex the first tree missed
	if o.FullTraversal {
		for v := 0; v < n; v++ {
			if w.graph.Visited(v) {
				continue
			}
			if err := w.walk(v); err != nil {
				return w.res, err
			}
		}
	}

	return w.res, nil
}

// walk emits the tree rooted at v with the selected walker.
func (w *walker) walk(v int) error {
	if w.opts.Iterative {
		return w.iterate(v)
	}

	return w.recurse(v, 0, -1)
}

// visit marks v, records it and fires the hook.
func (w *walker) visit(v, depth, parent int) error {
	if err := w.graph.MarkVisited(v); err != nil {
		return fmt.Errorf("dfs: mark %d: %w", v, err)
	}
	w.res.Order = append(w.res.Order, v)
	w.res.Depth[v] = depth
	if parent >= 0 {
		w.res.Parent[v] = parent
	}
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	return nil
}

// recurse is the pre-order walk on the Go call stack.
func (w *walker) recurse(v, depth, parent int) error {
	if err := w.visit(v, depth, parent); err != nil {
		return err
	}
	nbs, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%d): %w", v, err)
	}
	for _, u := range nbs {
		// a neighbour may have been reached through an earlier sibling
		if w.graph.Visited(u) {
			continue
		}
		if err = w.recurse(u, depth+1, v); err != nil {
			return err
		}
	}

	return nil
}

// iterate is the explicit-stack walk. Neighbours go on in reverse list order
// so the head of the list is popped first; stale entries for vertices reached
// meanwhile are skipped at pop time.
func (w *walker) iterate(start int) error {
	stack := []frame{{v: start, depth: 0, parent: -1}}
	for root := true; len(stack) > 0; root = false {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !root && w.graph.Visited(f.v) {
			continue
		}
		if err := w.visit(f.v, f.depth, f.parent); err != nil {
			return err
		}

		nbs, err := w.graph.Neighbors(f.v)
		if err != nil {
			return fmt.Errorf("dfs: Neighbors(%d): %w", f.v, err)
		}
		for i := len(nbs) - 1; i >= 0; i-- {
			if !w.graph.Visited(nbs[i]) {
				stack = append(stack, frame{v: nbs[i], depth: f.depth + 1, parent: f.v})
			}
		}
	}

	return nil
}
