// File: methods_edges.go
// Role: Edge insertion and adjacency queries.
//
// Determinism:
//   - Lists are reported most-recent-first; the same sequence of InsertEdge
//     calls always yields the same Neighbors/Print/traversal order.
package core

// InsertEdge adds the undirected edge {src, dest}.
//
// Implementation:
//   - Stage 1: Validate both endpoints against VertexCount(); on failure return
//     before touching any list.
//   - Stage 2: Put dest at the head of src's list.
//   - Stage 3: Put src at the head of dest's list.
//
// Behavior highlights:
//   - Parallel edges are kept: inserting {u,v} twice leaves two entries in
//     each direction.
//   - src == dest is accepted and leaves two entries of src in its own list.
//
// Errors:
//   - ErrVertexOutOfBounds (wrapped) if src or dest is negative or >= VertexCount().
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) InsertEdge(src, dest int) error {
	if err := g.checkVertex(src); err != nil {
		return err
	}
	if err := g.checkVertex(dest); err != nil {
		return err
	}

	// Storage is oldest-first, so appending makes the entry the new head.
	g.adjacency[src] = append(g.adjacency[src], dest)
	g.adjacency[dest] = append(g.adjacency[dest], src)

	return nil
}

// Neighbors returns a copy of the adjacency list of v, most-recent-first.
// Complexity: O(deg v).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	return reversed(g.adjacency[v]), nil
}

// AdjacencyList returns a snapshot of every vertex's list, indexed by vertex.
// The result has VertexCount() entries; an isolated vertex maps to an empty
// (non-nil) slice.
// Complexity: O(V+E).
func (g *Graph) AdjacencyList() [][]int {
	out := make([][]int, g.vertexCount)
	for v := range out {
		out[v] = reversed(g.adjacency[v])
	}

	return out
}

// Degree reports the number of list entries of v. A self-loop counts twice.
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}

	return len(g.adjacency[v]), nil
}

// EdgeCount reports the number of InsertEdge calls reflected in the lists
// (parallel edges and self-loops each count once).
func (g *Graph) EdgeCount() int {
	entries := 0
	for v := 0; v < g.vertexCount; v++ {
		entries += len(g.adjacency[v])
	}

	return entries / 2
}

// reversed copies s back to front; the result is never nil.
func reversed(s []int) []int {
	out := make([]int, len(s))
	for i, x := range s {
		out[len(s)-1-i] = x
	}

	return out
}
