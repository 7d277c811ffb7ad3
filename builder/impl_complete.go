// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once, lexicographic by (i,j).
//
// Complexity:
//   • Time: O(n²) edges. Space: O(1) extra.

package builder

import "github.com/katalvlaran/graphsearch/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph) error {
		base, err := insertBlock(g, methodComplete, n, minCompleteNodes)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = connect(g, methodComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
