// SPDX-License-Identifier: MIT
// Package: lvcurrent/builder
//
// impl_wheel.go - wheel W_n = hub + C_{n-1}.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcurrent/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel builds a hub idFn(0) joined to every vertex of the rim cycle idFn(1..n-1).
// Rim edges are emitted first, then spokes.
// Errors: ErrTooFewVertices if n < 4.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodWheel, 0, n); err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			u, v := cfg.idFn(1+i), cfg.idFn(1+(i+1)%rim)
			if err := addWeightedEdge(g, cfg, methodWheel, u, v); err != nil {
				return err
			}
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addWeightedEdge(g, cfg, methodWheel, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
