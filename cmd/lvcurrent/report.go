package main

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcurrent/centrality"
)

// summary describes the score distribution of a report.
type summary struct {
	Count  int     `yaml:"count"`
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"stddev"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
}

func summarize(xs []float64) summary {
	s := summary{Count: len(xs)}
	switch len(xs) {
	case 0:
		return s
	case 1:
		s.Mean = xs[0]
	default:
		s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)
	}
	s.Min, s.Max = floats.Min(xs), floats.Max(xs)

	return s
}

type nodeScore struct {
	ID    string  `yaml:"id"`
	Score float64 `yaml:"score"`
}

type nodeReport struct {
	Algorithm  string      `yaml:"algorithm"`
	Solver     string      `yaml:"solver"`
	Normalized bool        `yaml:"normalized"`
	Samples    int         `yaml:"samples,omitempty"`
	Scores     []nodeScore `yaml:"scores"`
	Summary    summary     `yaml:"summary"`
}

func newNodeReport(algorithm, solverName string, normalized bool, scores map[string]float64) nodeReport {
	r := nodeReport{Algorithm: algorithm, Solver: solverName, Normalized: normalized}
	r.Scores = make([]nodeScore, 0, len(scores))
	for id, s := range scores {
		r.Scores = append(r.Scores, nodeScore{ID: id, Score: s})
	}
	sort.Slice(r.Scores, func(i, j int) bool { return r.Scores[i].ID < r.Scores[j].ID })
	xs := make([]float64, len(r.Scores))
	for i, s := range r.Scores {
		xs[i] = s.Score
	}
	r.Summary = summarize(xs)

	return r
}

type edgeScore struct {
	U     string  `yaml:"u"`
	V     string  `yaml:"v"`
	Score float64 `yaml:"score"`
}

type edgeReport struct {
	Algorithm  string      `yaml:"algorithm"`
	Solver     string      `yaml:"solver"`
	Normalized bool        `yaml:"normalized"`
	Scores     []edgeScore `yaml:"scores"`
	Summary    summary     `yaml:"summary"`
}

func newEdgeReport(solverName string, normalized bool, scores map[centrality.EdgeKey]float64) edgeReport {
	r := edgeReport{Algorithm: "edge-current-flow-betweenness", Solver: solverName, Normalized: normalized}
	r.Scores = make([]edgeScore, 0, len(scores))
	for k, s := range scores {
		r.Scores = append(r.Scores, edgeScore{U: k.U, V: k.V, Score: s})
	}
	sort.Slice(r.Scores, func(i, j int) bool {
		a, b := r.Scores[i], r.Scores[j]
		if a.U != b.U {
			return a.U < b.U
		}

		return a.V < b.V
	})
	xs := make([]float64, len(r.Scores))
	for i, s := range r.Scores {
		xs[i] = s.Score
	}
	r.Summary = summarize(xs)

	return r
}

type partitionReport struct {
	Algorithm   string     `yaml:"algorithm"`
	Method      string     `yaml:"method"`
	K           int        `yaml:"k"`
	Communities [][]string `yaml:"communities"`
}

type knottyReport struct {
	Algorithm string   `yaml:"algorithm"`
	Compact   bool     `yaml:"compact"`
	Nodes     []string `yaml:"nodes"`
	Score     float64  `yaml:"score"`
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return enc.Close()
}
