// SPDX-License-Identifier: MIT
// Package laplacian: sentinel error set.
//
// Every message is prefixed with "laplacian: ..." for consistency. Callers
// match with errors.Is; context is added with fmt.Errorf("ctx: %w", ErrX).
//
// ERROR PRIORITY (documented, enforced in tests):
// graph nil -> directed -> ordering mismatch -> invalid weight.

package laplacian

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into Build.
	ErrGraphNil = errors.New("laplacian: graph is nil")

	// ErrDirected indicates a directed graph or at least one directed edge.
	ErrDirected = errors.New("laplacian: directed graphs are not supported")

	// ErrInvalidWeight indicates a conductance that is not a finite positive number.
	ErrInvalidWeight = errors.New("laplacian: invalid edge weight")

	// ErrUnknownVertex indicates an edge endpoint missing from the ordering.
	ErrUnknownVertex = errors.New("laplacian: unknown vertex id")

	// ErrDimensionMismatch indicates a vector of the wrong length.
	ErrDimensionMismatch = errors.New("laplacian: dimension mismatch")
)
