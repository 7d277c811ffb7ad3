// File: methods_visited.go
// Role: Traversal scratch state shared by dfs and bfs.
package core

// ResetVisited clears every visited flag. Callers run it once per traversal
// request, before calling dfs.DFS or bfs.BFS.
func (g *Graph) ResetVisited() {
	for i := range g.visited {
		g.visited[i] = false
	}
}

// Visited reports the flag of v. Out-of-range indices report false.
func (g *Graph) Visited(v int) bool {
	if v < 0 || v >= g.vertexCount {
		return false
	}

	return g.visited[v]
}

// MarkVisited sets the flag of v.
func (g *Graph) MarkVisited(v int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	g.visited[v] = true

	return nil
}

// VisitedVertices lists the flagged vertices in ascending index order.
func (g *Graph) VisitedVertices() []int {
	out := make([]int, 0, g.vertexCount)
	for v := 0; v < g.vertexCount; v++ {
		if g.visited[v] {
			out = append(out, v)
		}
	}

	return out
}
