package bfs

import (
	"fmt"

	"github.com/katalvlaran/graphsearch/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue *ring
	res   *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or a wrapped core.ErrVertexOutOfBounds for invalid
// input (before any visited flag changes), or any hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if start < 0 || start >= g.VertexCount() {
		return nil, fmt.Errorf("bfs: start %d: %w", start, core.ErrVertexOutOfBounds)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: newRing(g.Capacity()),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	// Seed queue with start vertex (no parent)
	if err := w.enqueue(start, 0, -1); err != nil {
		return w.res, err
	}

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent and queues it.
func (w *walker) enqueue(v, d, parent int) error {
	if err := w.graph.MarkVisited(v); err != nil {
		return fmt.Errorf("bfs: mark %d: %w", v, err)
	}
	if err := w.queue.push(queueItem{v: v, depth: d}); err != nil {
		return fmt.Errorf("bfs: enqueue %d: %w", v, err)
	}
	w.res.Depth[v] = d
	if parent >= 0 {
		w.res.Parent[v] = parent
	}
	w.opts.OnEnqueue(v, d)

	return nil
}

// loop processes the queue until empty or a hook fails.
func (w *walker) loop() error {
	for !w.queue.empty() {
		item := w.queue.pop()
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors queues every unvisited neighbour of item in list order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nbrs, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.v, err)
	}
	for _, u := range nbrs {
		if w.graph.Visited(u) {
			continue
		}
		if err = w.enqueue(u, item.depth+1, item.v); err != nil {
			return err
		}
	}

	return nil
}
