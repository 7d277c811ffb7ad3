// Package graphsearch is an interactive exerciser for a small undirected
// graph kept as adjacency lists: insert vertices and edges, then watch
// depth-first and breadth-first search walk it.
//
// Layout:
//
//	core/             — bounded adjacency-list Graph, visited flags, printing
//	dfs/              — depth-first search (recursive and explicit-stack)
//	bfs/              — breadth-first search over a fixed ring queue
//	builder/          — deterministic fixtures: Path, Cycle, Star, Complete
//	internal/config/  — YAML + flag configuration, slog logger construction
//	internal/shell/   — the z/v/e/d/b/p/q command loop
//	cmd/graphsearch/  — cobra entry point
//
// Quick example (edges inserted 0-1, 0-2, 1-3):
//
//	    0───1
//	    │   │
//	    2   3
//
//	adjacency lists are most-recent-first, so 0 lists [2 1];
//	DFS(0) = [0 2 1 3], BFS(0) = [0 2 1 3].
//
//	go run ./cmd/graphsearch --no-menu <<< "v v v v e 0 1 e 0 2 e 1 3 d 0 q"
package graphsearch
