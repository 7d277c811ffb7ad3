// Package builder provides deterministic fixture constructors for core.Graph.
//
// A Constructor inserts its own block of vertices (indices continue from the
// graph's current VertexCount) and then a documented, stable sequence of
// edges. Because adjacency lists are most-recent-first, the edge order fixes
// every traversal order, so fixtures built here give reproducible DFS/BFS
// sequences in tests and examples.
//
//	g, err := builder.BuildGraph(nil, builder.Path(4), builder.Star(3))
//	// vertices 0..3 form a path, 4 is a hub with leaves 5 and 6
//
// Constructors:
//
//   - Path(n)      n ≥ 2, edges (i-1,i) for i = 1..n-1.
//   - Cycle(n)     n ≥ 3, Path(n) edges then (n-1,0).
//   - Star(n)      n ≥ 2, hub is the first vertex, edges (hub,leaf) by leaf index.
//   - Complete(n)  n ≥ 1, pairs (i,j) with i<j in lexicographic order.
//
// Errors:
//
//   - ErrTooFewVertices   n below the constructor's minimum (checked before any insert).
//   - ErrConstructFailed  nil constructor passed to BuildGraph.
//   - core.ErrCapacityExceeded, wrapped, when the block does not fit.
package builder
