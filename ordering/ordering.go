// SPDX-License-Identifier: MIT
//
// File: ordering.go
// Role: Ordering type, identity ordering, relabeling and bandwidth.

package ordering

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvcurrent/core"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("ordering: graph is nil")

	// ErrDirected is returned for graphs with directed edges.
	ErrDirected = errors.New("ordering: directed graphs are not supported")

	// ErrMismatch is returned when an Ordering does not cover a graph's vertices.
	ErrMismatch = errors.New("ordering: ordering does not match graph")
)

// Ordering is a bijection between vertex IDs and positions 0..n-1.
type Ordering struct {
	// Perm[i] is the vertex placed at position i.
	Perm []string

	// Index[id] is the position of vertex id.
	Index map[string]int
}

// Len returns the number of ordered vertices.
func (o Ordering) Len() int { return len(o.Perm) }

// FromPerm builds an Ordering from a permutation of vertex IDs.
func FromPerm(perm []string) (Ordering, error) {
	idx := make(map[string]int, len(perm))
	for i, id := range perm {
		if _, dup := idx[id]; dup {
			return Ordering{}, fmt.Errorf("%w: duplicate vertex %q", ErrMismatch, id)
		}
		idx[id] = i
	}

	return Ordering{Perm: perm, Index: idx}, nil
}

// Identity orders the vertices of g by ascending ID.
func Identity(g *core.Graph) (Ordering, error) {
	if g == nil {
		return Ordering{}, ErrGraphNil
	}

	return FromPerm(g.Vertices())
}

// Validate checks that o covers exactly the vertices of g.
func (o Ordering) Validate(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if g.VertexCount() != len(o.Perm) {
		return fmt.Errorf("%w: %d vertices, %d positions", ErrMismatch, g.VertexCount(), len(o.Perm))
	}
	for _, id := range o.Perm {
		if !g.HasVertex(id) {
			return fmt.Errorf("%w: unknown vertex %q", ErrMismatch, id)
		}
	}

	return nil
}

// Relabel returns a copy of g whose vertex IDs are the decimal positions
// of o ("0" .. "n-1"). Edge weights and IDs are preserved.
func Relabel(g *core.Graph, o Ordering) (*core.Graph, error) {
	if err := o.Validate(g); err != nil {
		return nil, err
	}
	mapping := make(map[string]string, len(o.Perm))
	for i, id := range o.Perm {
		mapping[id] = strconv.Itoa(i)
	}

	return g.Relabel(mapping)
}

// Bandwidth returns max |Index[u] − Index[v]| over the non-loop edges of g.
func Bandwidth(g *core.Graph, o Ordering) (int, error) {
	if err := o.Validate(g); err != nil {
		return 0, err
	}
	bw := 0
	for _, e := range g.Edges() {
		d := o.Index[e.From] - o.Index[e.To]
		if d < 0 {
			d = -d
		}
		if d > bw {
			bw = d
		}
	}

	return bw, nil
}
