// Package core provides the bounded adjacency-list Graph that the traversal
// packages (dfs, bfs) and the interactive shell operate on.
//
// The Graph G = (V,E) is undirected and deliberately small:
//
//   - Vertices are identified only by their index 0..VertexCount()-1.
//     There is no vertex object; InsertVertex simply grows the count.
//   - Capacity is fixed for the lifetime of a Graph (DefaultCapacity = 10,
//     override with WithCapacity at construction).
//   - Every edge {u,v} is stored symmetrically: v in the list of u and
//     u in the list of v.
//   - Adjacency lists are ordered most-recent-first. The newest edge of a
//     vertex is the first neighbour reported by Neighbors, Print, DFS and BFS.
//   - Parallel edges are kept (multigraph). Self-loops are accepted and
//     produce two entries of v in the list of v.
//   - A per-vertex visited flag array is traversal scratch. Callers reset it
//     with ResetVisited before each traversal; traversals never reset it.
//
// Core Methods:
//
//	// Lifecycle
//	NewGraph(opts ...GraphOption) *Graph   // O(capacity)
//	Initialize()                           // O(capacity): back to the empty state
//	Release()                              // O(V): clear lists, keep VertexCount
//
//	// Mutation
//	InsertVertex() (int, error)            // O(1)
//	InsertEdge(src, dest int) error        // O(1) amortized
//
//	// Query
//	VertexCount() int, Capacity() int, Full() bool
//	Neighbors(v int) ([]int, error)        // O(deg v), most-recent-first
//	AdjacencyList() [][]int                // O(V+E)
//	Degree(v int) (int, error), EdgeCount() int
//
//	// Traversal scratch
//	ResetVisited(), Visited(v) bool, MarkVisited(v) error, VisitedVertices() []int
//
//	// Display
//	Print(w io.Writer) error, String() string
//
// Errors:
//
//	ErrCapacityExceeded  – InsertVertex on a full graph
//	ErrVertexOutOfBounds – an index outside 0..VertexCount()-1
//
// Every failing operation leaves the Graph exactly as it was.
//
// The Graph is not safe for concurrent use; it is owned by a single caller.
package core
