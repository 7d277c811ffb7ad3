// Package bfs provides breadth-first search over a core.Graph, returning
// the visit order together with hop distances and parent links.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from start.
//   - A vertex is marked visited when it is enqueued, not when it is
//     dequeued, so no vertex is ever queued twice. The FIFO queue is a
//     fixed ring sized to the graph's capacity.
//   - Neighbours are scanned in adjacency-list order (most-recently-inserted
//     edge first); that order decides ties within a layer.
//   - The graph's visited flags are used as-is: call g.ResetVisited() before
//     a fresh traversal.
//
// Determinism
//
//	The same sequence of InsertEdge calls always yields the same Order.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(capacity) for the queue plus O(V) for Depth/Parent
//
// Usage
//
//	g.ResetVisited()
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithOnVisit(func(v, depth int) error { fmt.Println("Visited", v); return nil }),
//	)
//	path, err := res.PathTo(3)
//
// Errors
//
//   - ErrGraphNil                if the graph pointer is nil.
//   - core.ErrVertexOutOfBounds  if start is not a vertex (wrapped).
//   - ErrNoPath                  from PathTo for an unreached vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
