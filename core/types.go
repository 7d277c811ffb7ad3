// File: types.go
// Role: Graph type, construction options and sentinel errors.
package core

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the number of vertex slots a Graph has unless
// WithCapacity says otherwise.
const DefaultCapacity = 10

// Sentinel errors for core graph operations.
var (
	// ErrCapacityExceeded indicates InsertVertex was called on a full graph.
	ErrCapacityExceeded = errors.New("core: vertex capacity exceeded")

	// ErrVertexOutOfBounds indicates a vertex index outside 0..VertexCount()-1.
	ErrVertexOutOfBounds = errors.New("core: vertex index out of bounds")
)

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity sets the number of vertex slots. Panics if n < 1;
// option constructors validate eagerly so a bad literal fails at startup.
func WithCapacity(n int) GraphOption {
	if n < 1 {
		panic(fmt.Sprintf("core: WithCapacity(%d): capacity must be >= 1", n))
	}

	return func(g *Graph) { g.capacity = n }
}

// Graph is an undirected adjacency-list graph with a fixed number of
// vertex slots.
//
// adjacency[v] holds the neighbours of v in insertion order (oldest first);
// the public list order is the reverse, most-recent-first. Appending and
// reading backwards gives O(1) inserts without changing the observable order.
type Graph struct {
	capacity    int
	vertexCount int

	adjacency [][]int // len == capacity
	visited   []bool  // len == capacity
}

// NewGraph creates an empty Graph: no vertices, empty adjacency lists and
// cleared visited flags.
// Complexity: O(capacity).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(g)
	}
	g.adjacency = make([][]int, g.capacity)
	g.visited = make([]bool, g.capacity)

	return g
}

// Initialize returns g to the state NewGraph produced: zero vertices, every
// adjacency list dropped and every visited flag cleared. Capacity is kept.
// Complexity: O(capacity).
func (g *Graph) Initialize() {
	g.vertexCount = 0
	for i := range g.adjacency {
		g.adjacency[i] = nil // drop backing arrays so they can be collected
		g.visited[i] = false
	}
}

// Release clears the adjacency list of every existing vertex.
// VertexCount and the visited flags are left untouched.
// Complexity: O(VertexCount()).
func (g *Graph) Release() {
	for v := 0; v < g.vertexCount; v++ {
		g.adjacency[v] = nil
	}
}

// Capacity reports the fixed number of vertex slots.
func (g *Graph) Capacity() int { return g.capacity }

// VertexCount reports how many vertices have been inserted.
func (g *Graph) VertexCount() int { return g.vertexCount }

// Full reports whether InsertVertex would fail with ErrCapacityExceeded.
func (g *Graph) Full() bool { return g.vertexCount >= g.capacity }

// checkVertex returns a wrapped ErrVertexOutOfBounds unless 0 <= v < VertexCount().
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.vertexCount {
		return fmt.Errorf("vertex %d (count %d): %w", v, g.vertexCount, ErrVertexOutOfBounds)
	}

	return nil
}
