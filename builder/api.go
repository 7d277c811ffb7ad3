// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// api.go - orchestrator and shared helpers.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, cons...). Creates g, runs cons in order.
//   - Determinism: same options and constructor order ⇒ identical adjacency lists.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsearch/core"
)

// Constructor applies a deterministic graph mutation. Constructors validate
// parameters before inserting anything and return sentinel errors.
type Constructor func(g *core.Graph) error

// BuildGraph creates a new core.Graph with gopts and applies all
// constructors in order. Any constructor error is wrapped with
// "BuildGraph: %w" and returned immediately.
func BuildGraph(gopts []core.GraphOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// insertBlock validates n against min, checks the block fits, inserts n
// vertices and returns the index of the first one.
func insertBlock(g *core.Graph, method string, n, min int) (int, error) {
	if n < min {
		return 0, fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}
	// Check room up front so a failed constructor leaves no partial block.
	if free := g.Capacity() - g.VertexCount(); n > free {
		return 0, fmt.Errorf("%s: n=%d > free=%d: %w", method, n, free, core.ErrCapacityExceeded)
	}

	base := g.VertexCount()
	for i := 0; i < n; i++ {
		if _, err := g.InsertVertex(); err != nil {
			return 0, fmt.Errorf("%s: InsertVertex: %w", method, err)
		}
	}

	return base, nil
}

// connect inserts {u,v} with method context on failure.
func connect(g *core.Graph, method string, u, v int) error {
	if err := g.InsertEdge(u, v); err != nil {
		return fmt.Errorf("%s: InsertEdge(%d,%d): %w", method, u, v, err)
	}

	return nil
}
