// SPDX-License-Identifier: MIT
// Package: lvcurrent/builder
//
// impl_path.go - simple path P_n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcurrent/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds P_n: vertices idFn(0..n-1), edges (i-1, i) in ascending i.
// Errors: ErrTooFewVertices if n < 2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, 0, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addWeightedEdge(g, cfg, methodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
