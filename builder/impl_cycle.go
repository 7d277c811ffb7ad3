// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits the path edges (i-1, i) for i=1..n-1, then the closing edge (n-1, 0).

package builder

import "github.com/katalvlaran/graphsearch/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph) error {
		base, err := insertBlock(g, methodCycle, n, minCycleNodes)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(g, methodCycle, base+i-1, base+i); err != nil {
				return err
			}
		}

		return connect(g, methodCycle, base+n-1, base)
	}
}
