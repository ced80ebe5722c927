// SPDX-License-Identifier: MIT

// Package community splits a graph into k communities by repeatedly removing
// its most central edge (Girvan–Newman style divisive clustering).
//
// Two edge scores are available:
//
//	EdgeBetweennessPartition             shortest-path edge betweenness (gonum graph/network)
//	EdgeCurrentFlowBetweennessPartition  unnormalized current-flow edge betweenness (package centrality)
//
// Scores are recomputed on the working graph after every removal. Current
// flow is only defined on connected graphs, so it is evaluated per connected
// component. Edges whose scores lie within a relative 1e-9 of the maximum
// are considered tied and the pair with the smallest (U, V) IDs is removed.
//
// The input graph is never modified. Results list each community sorted by
// vertex ID, communities ordered by their smallest member.
package community
