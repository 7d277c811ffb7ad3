package dfs

import "errors"

// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds the resolved traversal settings.
type Options struct {
	// OnVisit, if non-nil, is invoked when a vertex is emitted, with its
	// depth in the DFS tree. Returning an error aborts the traversal.
	OnVisit func(v, depth int) error

	// Iterative selects the explicit-stack walker.
	Iterative bool

	// FullTraversal restarts from every unvisited vertex after start.
	FullTraversal bool
}

// DefaultOptions returns recursive, single-source options with no hook.
func DefaultOptions() Options {
	return Options{}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithIterative selects the explicit-stack walker.
func WithIterative() Option {
	return func(o *Options) {
		o.Iterative = true
	}
}

// WithFullTraversal makes DFS cover every component: after the tree rooted
// at start, it walks from each still-unvisited vertex in index order.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order lists vertices in the order they were emitted (pre-order).
	Order []int

	// Depth maps each emitted vertex to its distance from its tree root.
	Depth map[int]int

	// Parent maps each emitted non-root vertex to the vertex it was reached from.
	Parent map[int]int
}
