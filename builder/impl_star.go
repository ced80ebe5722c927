// SPDX-License-Identifier: MIT
// Package: lvcurrent/builder
//
// impl_star.go - star S_n with hub idFn(0).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcurrent/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star builds a star with hub idFn(0) and leaves idFn(1..n-1).
// Errors: ErrTooFewVertices if n < 2.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodStar, 0, n); err != nil {
			return err
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addWeightedEdge(g, cfg, methodStar, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
