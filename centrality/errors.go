// SPDX-License-Identifier: MIT

package centrality

import "errors"

var (
	// ErrGraphNil indicates a nil *core.Graph.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrDirected indicates a directed graph or a directed edge.
	ErrDirected = errors.New("centrality: directed graphs are not supported")

	// ErrEmptyGraph indicates a graph without vertices.
	ErrEmptyGraph = errors.New("centrality: graph has no vertices")

	// ErrNotConnected indicates more than one connected component.
	ErrNotConnected = errors.New("centrality: graph is not connected")

	// ErrTooFewNodes indicates fewer than three vertices for the sampling estimator.
	ErrTooFewNodes = errors.New("centrality: at least 3 vertices required")

	// ErrSampleBudget indicates that the required sample count exceeds kmax.
	ErrSampleBudget = errors.New("centrality: required samples exceed kmax")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("centrality: option violation")
)
