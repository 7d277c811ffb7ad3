// Package dfs implements depth-first search over a core.Graph.
//
// What:
//
//   - DFS(g, start, opts...) walks the graph in pre-order: a vertex is
//     emitted when it is first reached, then each neighbour is explored in
//     adjacency-list order (most-recently-inserted edge first) before the
//     next sibling is considered.
//   - The default walker recurses on the Go call stack. WithIterative()
//     switches to an explicit stack that produces the identical order:
//     neighbours are pushed in reverse list order so the first unvisited
//     neighbour is on top, and a vertex is marked when popped.
//   - The traversal reads and sets the graph's own visited flags. It does
//     NOT clear them; call g.ResetVisited() first for a fresh traversal.
//     Leaving them set lets several calls share one visited set.
//
// Example:
//
//	// 0-1, 0-2, 1-3 inserted in that order
//	g.ResetVisited()
//	res, err := dfs.DFS(g, 0)
//	// res.Order == [0 2 1 3]
//
// Options:
//
//   - WithOnVisit(fn)      pre-order hook; a returned error aborts the walk.
//   - WithIterative()      explicit-stack walker, same order as recursion.
//   - WithFullTraversal()  after start, restart from every unvisited vertex
//     in ascending index order (forest traversal).
//
// Recursion depth equals the longest simple path explored, bounded by the
// graph's capacity. Graphs built with a large WithCapacity should use
// WithIterative.
//
// Complexity:
//
//   - Time O(V+E), Memory O(V) (plus O(E) stack entries in iterative mode,
//     since a vertex may be pushed once per incident edge).
//
// Errors:
//
//   - ErrGraphNil                 g is nil.
//   - core.ErrVertexOutOfBounds   start is not a vertex; no flag is touched.
//   - hook errors                 wrapped, from OnVisit.
package dfs
