// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is the first vertex of the block; leaves follow it.
//   - Emits spokes (hub, leaf) in increasing leaf order, so the hub's list
//     reads highest leaf first.

package builder

import "github.com/katalvlaran/graphsearch/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph) error {
		hub, err := insertBlock(g, methodStar, n, minStarNodes)
		if err != nil {
			return err
		}
		for leaf := hub + 1; leaf < hub+n; leaf++ {
			if err = connect(g, methodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
