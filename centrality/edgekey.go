// SPDX-License-Identifier: MIT

package centrality

import "fmt"

// EdgeKey names an undirected edge by its endpoint IDs with U < V.
type EdgeKey struct {
	U, V string
}

// NewEdgeKey orders a and b into an EdgeKey.
func NewEdgeKey(a, b string) EdgeKey {
	if b < a {
		a, b = b, a
	}

	return EdgeKey{U: a, V: b}
}

// String renders the key as "(U, V)".
func (k EdgeKey) String() string {
	return fmt.Sprintf("(%s, %s)", k.U, k.V)
}
