// SPDX-License-Identifier: MIT

package laplacian

// Option configures Build.
type Option func(*options)

type options struct {
	useWeights bool
}

// WithWeights reads Edge.Weight as conductance when the graph is weighted.
// Without it, or on an unweighted graph, every edge conducts 1.
func WithWeights(use bool) Option {
	return func(o *options) { o.useWeights = use }
}
