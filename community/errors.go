// SPDX-License-Identifier: MIT

package community

import "errors"

var (
	// ErrGraphNil indicates a nil *core.Graph.
	ErrGraphNil = errors.New("community: graph is nil")

	// ErrDirected indicates a directed graph or a directed edge.
	ErrDirected = errors.New("community: directed graphs are not supported")

	// ErrInvalidPartitionCount indicates k outside [1, |V|].
	ErrInvalidPartitionCount = errors.New("community: partition count out of range")

	// ErrInvalidWeight indicates a non-positive or non-finite distance on a weighted graph.
	ErrInvalidWeight = errors.New("community: invalid edge weight")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("community: option violation")
)
