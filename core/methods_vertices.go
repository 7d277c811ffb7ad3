// File: methods_vertices.go
// Role: Vertex insertion.
//
// Determinism:
//   - Indices are handed out densely: the k-th successful InsertVertex since
//     the last Initialize returns k-1.
package core

import "fmt"

// InsertVertex adds one vertex and returns its index.
//
// Implementation:
//   - Stage 1: Reject when VertexCount() == Capacity() (ErrCapacityExceeded).
//   - Stage 2: Hand out the current count as the index and increment it.
//
// Returns:
//   - int: index of the new vertex, or -1 on error.
//   - error: nil on success; wrapped ErrCapacityExceeded on a full graph.
//
// Notes:
//   - The new vertex starts with an empty adjacency list; a slot previously
//     used before Initialize was dropped there, so nothing stale survives.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) InsertVertex() (int, error) {
	if g.Full() {
		return -1, fmt.Errorf("capacity %d: %w", g.capacity, ErrCapacityExceeded)
	}
	v := g.vertexCount
	g.vertexCount++

	return v, nil
}
