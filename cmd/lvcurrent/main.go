// Command lvcurrent computes current-flow centrality, divisive communities
// and knotty centres for graphs given as edge lists.
//
//	lvcurrent betweenness graph.txt
//	lvcurrent approx --epsilon 0.1 --seed 7 graph.txt
//	lvcurrent partition -k 3 --method shortest-path graph.txt
//
// Edge lists hold one edge per line, "u v [weight]"; text after '#' is
// ignored. Results are written to stdout as YAML.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvcurrent:", err)
		os.Exit(1)
	}
}
