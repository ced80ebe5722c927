// SPDX-License-Identifier: MIT
// Package: lvcurrent/builder
//
// impl_barbell.go - barbell graph: two K_m bells joined by a path of p inner vertices.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcurrent/core"
)

const (
	methodBarbell   = "Barbell"
	minBarbellBell  = 2
	minBarbellInner = 0
)

// Barbell builds two cliques of size m joined by a path.
//
// Layout (indices):
//   - left bell:  0 .. m-1
//   - path:       m .. m+p-1
//   - right bell: m+p .. 2m+p-1
//
// The bridge runs m-1 → m → … → m+p. With p == 0 the bells share a single
// bridge edge (m-1, m). This is the canonical community-detection fixture:
// every bridge edge carries all inter-bell traffic.
//
// Errors: ErrTooFewVertices if m < 2 or p < 0.
// Complexity: O(m² + p).
func Barbell(m, p int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if m < minBarbellBell || p < minBarbellInner {
			return fmt.Errorf("%s: m=%d (min %d), p=%d (min %d): %w",
				methodBarbell, m, minBarbellBell, p, minBarbellInner, ErrTooFewVertices)
		}
		if err := clique(g, cfg, methodBarbell, 0, m); err != nil {
			return err
		}
		if err := addVertices(g, cfg, methodBarbell, m, p); err != nil {
			return err
		}
		if err := clique(g, cfg, methodBarbell, m+p, m); err != nil {
			return err
		}
		for i := m - 1; i < m+p; i++ {
			if err := addWeightedEdge(g, cfg, methodBarbell, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}
