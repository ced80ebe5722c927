// SPDX-License-Identifier: MIT
// Package: lvcurrent/builder
//
// config.go - immutable configuration resolved from BuilderOption values.

package builder

import (
	"math/rand/v2"
	"strconv"
)

// builderConfig holds the resolved knobs shared by every constructor.
type builderConfig struct {
	// idFn maps a zero-based index to a vertex ID.
	idFn func(int) string

	// rng drives stochastic constructors and random weights; nil unless set.
	rng *rand.Rand

	// weightFn yields the weight of each new edge on weighted graphs.
	weightFn WeightFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func decimalID(i int) string {
	return strconv.Itoa(i)
}
