package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvcurrent/core"
)

var errEdgeLine = errors.New("edge list: malformed line")

// readEdgeList parses "u v [weight]" lines into an undirected graph that
// allows self-loops. Weights are read only when weighted is set; a missing
// weight then defaults to 1. A repeated pair is an error.
func readEdgeList(r io.Reader, weighted bool) (*core.Graph, error) {
	opts := []core.GraphOption{core.WithLoops()}
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		switch len(fields) {
		case 0:
			continue
		case 1:
			if err := g.AddVertex(fields[0]); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			continue
		case 2, 3:
		default:
			return nil, fmt.Errorf("%w %d: %d fields", errEdgeLine, line, len(fields))
		}

		w := 0.0
		if weighted {
			w = 1
			if len(fields) == 3 {
				v, err := strconv.ParseFloat(fields[2], 64)
				if err != nil {
					return nil, fmt.Errorf("%w %d: weight: %w", errEdgeLine, line, err)
				}
				w = v
			}
		}
		if _, err := g.AddEdge(fields[0], fields[1], w); err != nil {
			return nil, fmt.Errorf("line %d (%s %s): %w", line, fields[0], fields[1], err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edge list: %w", err)
	}

	return g, nil
}
