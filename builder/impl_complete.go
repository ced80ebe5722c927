// SPDX-License-Identifier: MIT
// Package: lvcurrent/builder
//
// impl_complete.go - complete graph K_n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcurrent/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds K_n with edges (i, j), i < j, in lexicographic index order.
// Errors: ErrTooFewVertices if n < 1.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		return clique(g, cfg, methodComplete, 0, n)
	}
}

// clique adds vertices idFn(offset..offset+n-1) and every pair between them.
func clique(g *core.Graph, cfg builderConfig, method string, offset, n int) error {
	if err := addVertices(g, cfg, method, offset, n); err != nil {
		return err
	}
	for i := offset; i < offset+n; i++ {
		for j := i + 1; j < offset+n; j++ {
			if err := addWeightedEdge(g, cfg, method, cfg.idFn(i), cfg.idFn(j)); err != nil {
				return err
			}
		}
	}

	return nil
}
