// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1, i) for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import "github.com/katalvlaran/graphsearch/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph) error {
		base, err := insertBlock(g, methodPath, n, minPathNodes)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(g, methodPath, base+i-1, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}
