// Package lvcurrent measures how electric current spreads through a graph.
//
// Every edge is treated as a resistor whose conductance is its weight (1 on
// unweighted graphs). Injecting a unit current at a source and extracting it
// at a sink induces potentials at every vertex; the current-flow betweenness
// of a vertex or edge is the throughput it carries, averaged over all
// source/sink pairs. Unlike shortest-path betweenness it credits every path,
// not just the geodesics.
//
// What is inside:
//
//	core/        — thread-safe Graph, Vertex, Edge and graph views
//	builder/     — deterministic topologies (path, cycle, star, barbell, grid …)
//	bfs/         — traversal, connectivity and connected components
//	ordering/    — vertex orderings, reverse Cuthill–McKee and bandwidth
//	laplacian/   — sparse weighted Laplacian with dense and banded exports
//	solver/      — inverse Laplacian rows via full inverse, banded Cholesky or CG
//	flowmatrix/  — per-edge rows of the current-flow matrix
//	centrality/  — exact node/edge and sampled current-flow betweenness
//	community/   — divisive partitioning by shortest-path or current-flow edge betweenness
//	knotty/      — knotty centrality: the densely linked high-betweenness core
//	cmd/lvcurrent — command-line front end writing YAML reports
//
// Quick example:
//
//	    A───B
//	    │   │
//	    C───D
//
// On this square every vertex carries the same current, so
// centrality.CurrentFlowBetweenness returns 1/3 for each of them.
//
//	go get github.com/katalvlaran/lvcurrent
package lvcurrent
