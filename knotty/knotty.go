// Package knotty finds the knotty centre of an undirected graph: the vertex
// set S that maximizes
//
//	kc(S) = BC(S) · density(S)            (|S| ≥ 3, else 0)
//
// where BC(S) is the share of total shortest-path betweenness held by S. The
// compact variant (default) scales kc by (N − |S|)/N to favor small cores.
//
// The search follows Shanahan & Wildie (2012): vertices are ranked by
// indirect betweenness BC·(1 + 2·degree); an exhaustive phase repeatedly
// tries every subset of the next five ranked vertices, then a hill-climbing
// phase adds single vertices while the score strictly improves.
package knotty

import (
	"errors"
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvcurrent/core"
)

var (
	// ErrGraphNil indicates a nil *core.Graph.
	ErrGraphNil = errors.New("knotty: graph is nil")
	// ErrDirected indicates a directed graph or a directed edge.
	ErrDirected = errors.New("knotty: directed graphs are not supported")
	// ErrMultigraph indicates a graph that allows parallel edges.
	ErrMultigraph = errors.New("knotty: multigraphs are not supported")
	// ErrEmptyGraph indicates a graph without vertices.
	ErrEmptyGraph = errors.New("knotty: graph has no vertices")
)

const (
	// exhaustiveWidth is how many ranked vertices each exhaustive round considers.
	exhaustiveWidth = 5
	// tieTolerance is the relative margin a score must clear to replace the incumbent.
	tieTolerance = 1e-12
)

func improves(x, incumbent float64) bool {
	return x > incumbent+tieTolerance*math.Max(1, math.Abs(incumbent))
}

// Result is the knotty centre and its score. Nodes are sorted by ID.
type Result struct {
	Nodes []string
	Score float64
}

// Option configures Centre.
type Option func(*config)

type config struct {
	compact bool
	logger  *slog.Logger
}

// WithCompact selects compact (true, default) or plain knotty centrality.
func WithCompact(compact bool) Option {
	return func(c *config) { c.compact = compact }
}

// WithLogger routes debug logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// scorer evaluates kc over vertex indices.
type scorer struct {
	n       int
	bc      []float64
	adj     []map[int]bool
	compact bool
}

func (s *scorer) score(set []int) float64 {
	m := len(set)
	if m < 3 {
		return 0
	}
	in := make(map[int]bool, m)
	for _, v := range set {
		in[v] = true
	}
	var total float64
	edges := 0
	for _, v := range set {
		total += s.bc[v]
		for w := range s.adj[v] {
			if w > v && in[w] {
				edges++
			}
		}
	}
	kc := total * 2 * float64(edges) / float64(m*(m-1))
	if s.compact {
		kc *= float64(s.n-m) / float64(s.n)
	}

	return kc
}

// Centre returns the knotty centre of g.
//
// Errors: ErrGraphNil, ErrDirected, ErrMultigraph, ErrEmptyGraph.
// A graph without betweenness (every vertex on no shortest path) scores 0
// with an empty centre.
func Centre(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	cfg := config{compact: true, logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if g.Directed() || g.HasDirectedEdges() {
		return Result{}, ErrDirected
	}
	if g.Multigraph() {
		return Result{}, ErrMultigraph
	}
	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return Result{}, ErrEmptyGraph
	}

	s := newScorer(g, ids, cfg.compact)
	rank := s.ranking()

	// Exhaustive phase.
	var nodes []int
	kc := 0.0
	taken := make([]bool, n)
	for {
		before := len(nodes)
		choices := make([]int, 0, exhaustiveWidth)
		for _, v := range rank {
			if !taken[v] && len(choices) < exhaustiveWidth {
				choices = append(choices, v)
			}
		}
		nodes, kc = s.bestSubset(nodes, choices)
		for _, v := range nodes {
			taken[v] = true
		}
		if len(nodes) <= before {
			break
		}
	}
	cfg.logger.Debug("knotty: exhaustive phase",
		slog.Int("nodes", len(nodes)),
		slog.Float64("score", kc),
	)

	// Hill climbing.
	for len(nodes) < n {
		best, pick := 0.0, -1
		for v := 0; v < n; v++ {
			if taken[v] {
				continue
			}
			if x := s.score(append(nodes[:len(nodes):len(nodes)], v)); improves(x, best) {
				best, pick = x, v
			}
		}
		if pick < 0 || !improves(best, kc) {
			break
		}
		nodes = append(nodes, pick)
		taken[pick] = true
		kc = best
	}

	out := make([]string, len(nodes))
	for i, v := range nodes {
		out[i] = ids[v]
	}
	sort.Strings(out)
	cfg.logger.Debug("knotty: centre",
		slog.Int("size", len(out)),
		slog.Float64("score", kc),
		slog.Bool("compact", cfg.compact),
	)

	return Result{Nodes: out, Score: kc}, nil
}

func newScorer(g *core.Graph, ids []string, compact bool) *scorer {
	n := len(ids)
	index := make(map[string]int, n)
	sg := simple.NewUndirectedGraph()
	for i, id := range ids {
		index[id] = i
		sg.AddNode(simple.Node(i))
	}
	adj := make([]map[int]bool, n)
	for i := range adj {
		adj[i] = make(map[int]bool)
	}
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		if u == v {
			continue
		}
		adj[u][v], adj[v][u] = true, true
		sg.SetEdge(sg.NewEdge(simple.Node(u), simple.Node(v)))
	}

	raw := network.Betweenness(sg)
	bc := make([]float64, n)
	var total float64
	for id, b := range raw {
		bc[id] = b
		total += b
	}
	if total > 0 {
		for i := range bc {
			bc[i] /= total
		}
	}

	return &scorer{n: n, bc: bc, adj: adj, compact: compact}
}

// ranking orders vertex indices by indirect betweenness, descending; ties by index.
func (s *scorer) ranking() []int {
	bc2 := make([]float64, s.n)
	rank := make([]int, s.n)
	for v := range rank {
		rank[v] = v
		bc2[v] = s.bc[v] * float64(1+2*len(s.adj[v]))
	}
	sort.SliceStable(rank, func(a, b int) bool { return bc2[rank[a]] > bc2[rank[b]] })

	return rank
}

// bestSubset tries given ∪ T for every subset T of choices. Masks are visited
// with choices[0] as the most significant bit and only a clearly higher
// score replaces the incumbent, so ties keep the subset that leaves out the
// higher-ranked choices.
func (s *scorer) bestSubset(given, choices []int) ([]int, float64) {
	m := len(choices)
	best := given
	bestKC := s.score(given)
	buf := make([]int, 0, len(given)+m)
	for mask := 1; mask < 1<<m; mask++ {
		buf = append(buf[:0], given...)
		for i, v := range choices {
			if mask>>(m-1-i)&1 == 1 {
				buf = append(buf, v)
			}
		}
		if kc := s.score(buf); improves(kc, bestKC) {
			best = append([]int(nil), buf...)
			bestKC = kc
		}
	}

	return best, bestKC
}
