package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcurrent/centrality"
	"github.com/katalvlaran/lvcurrent/core"
)

const (
	path4 = "# path\n0 1\n1 2\n2 3\n"

	// two triangles joined through node 3
	barbell = `0 1
0 2
1 2
2 3
3 4
4 5
4 6
5 6
`
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func execute(stdin string, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

type CLISuite struct {
	suite.Suite
	path    string
	barbell string
}

func (s *CLISuite) SetupTest() {
	s.path = writeFile(s.T(), "path.txt", path4)
	s.barbell = writeFile(s.T(), "barbell.txt", barbell)
}

func (s *CLISuite) run(args ...string) string {
	out, _, err := execute("", args...)
	s.Require().NoError(err)

	return out
}

func (s *CLISuite) TestBetweenness() {
	var rep nodeReport
	s.Require().NoError(yaml.Unmarshal([]byte(s.run("betweenness", s.path)), &rep))

	s.Equal("current-flow-betweenness", rep.Algorithm)
	s.Equal("lu", rep.Solver)
	s.True(rep.Normalized)
	s.Require().Len(rep.Scores, 4)
	want := []float64{0, 2.0 / 3, 2.0 / 3, 0}
	for i, sc := range rep.Scores {
		s.Equal(string(rune('0'+i)), sc.ID)
		s.InDelta(want[i], sc.Score, 1e-9)
	}
	s.Equal(4, rep.Summary.Count)
	s.InDelta(1.0/3, rep.Summary.Mean, 1e-9)
	s.InDelta(0, rep.Summary.Min, 1e-9)
	s.InDelta(2.0/3, rep.Summary.Max, 1e-9)
	s.Greater(rep.Summary.StdDev, 0.0)
}

func (s *CLISuite) TestBetweenness_Stdin() {
	out, _, err := execute(path4, "betweenness", "--normalized=false", "--solver", "cg", "-")
	s.Require().NoError(err)

	var rep nodeReport
	s.Require().NoError(yaml.Unmarshal([]byte(out), &rep))
	s.Equal("cg", rep.Solver)
	s.False(rep.Normalized)
	s.InDelta(2, rep.Scores[1].Score, 1e-6)
}

func (s *CLISuite) TestEdgeBetweenness() {
	var rep edgeReport
	s.Require().NoError(yaml.Unmarshal([]byte(s.run("edge-betweenness", s.path)), &rep))

	s.Equal("full", rep.Solver)
	s.Require().Len(rep.Scores, 3)
	s.Equal(edgeScore{U: "0", V: "1", Score: rep.Scores[0].Score}, rep.Scores[0])
	s.InDelta(0.5, rep.Scores[0].Score, 1e-9)
	s.InDelta(2.0/3, rep.Scores[1].Score, 1e-9)
	s.InDelta(0.5, rep.Scores[2].Score, 1e-9)
}

func (s *CLISuite) TestApprox() {
	var rep nodeReport
	out := s.run("approx", "--epsilon", "0.5", "--seed", "7", s.barbell)
	s.Require().NoError(yaml.Unmarshal([]byte(out), &rep))

	s.Equal("approximate-current-flow-betweenness", rep.Algorithm)
	k, err := centrality.RequiredSamples(7, 0.5)
	s.Require().NoError(err)
	s.Equal(k, rep.Samples)
	s.Len(rep.Scores, 7)

	again := s.run("approx", "--epsilon", "0.5", "--seed", "7", s.barbell)
	s.Equal(out, again)
}

func (s *CLISuite) TestApprox_Budget() {
	_, _, err := execute("", "approx", "--epsilon", "0.01", "--kmax", "10", s.barbell)
	s.Require().ErrorIs(err, centrality.ErrSampleBudget)
}

func (s *CLISuite) TestPartition() {
	var rep partitionReport
	s.Require().NoError(yaml.Unmarshal([]byte(s.run("partition", "-k", "3", s.barbell)), &rep))
	s.Equal(methodCurrentFlow, rep.Method)
	s.Equal([][]string{{"0", "1", "2"}, {"3"}, {"4", "5", "6"}}, rep.Communities)

	rep = partitionReport{}
	s.Require().NoError(yaml.Unmarshal([]byte(s.run("partition", "--method", "shortest-path", s.barbell)), &rep))
	s.Equal(2, rep.K)
	s.Equal([][]string{{"0", "1", "2"}, {"3", "4", "5", "6"}}, rep.Communities)
}

func (s *CLISuite) TestPartition_UnknownMethod() {
	_, _, err := execute("", "partition", "--method", "louvain", s.barbell)
	s.Require().Error(err)
	s.Contains(err.Error(), "louvain")
}

func (s *CLISuite) TestKnotty() {
	p := writeFile(s.T(), "knot.txt", "0 1\n0 2\n1 2\n1 3\n1 4\n4 5\n")

	var rep knottyReport
	s.Require().NoError(yaml.Unmarshal([]byte(s.run("knotty", p)), &rep))
	s.True(rep.Compact)
	s.Equal([]string{"0", "1", "2"}, rep.Nodes)
	s.InDelta(1.0/3, rep.Score, 1e-9)

	rep = knottyReport{}
	s.Require().NoError(yaml.Unmarshal([]byte(s.run("knotty", "--compact=false", p)), &rep))
	s.InDelta(2.0/3, rep.Score, 1e-9)
}

func (s *CLISuite) TestConfigOverlay() {
	cfg := writeFile(s.T(), "lvcurrent.yaml", "solver: cg\nnormalized: false\npartition:\n  k: 4\n")

	var rep nodeReport
	s.Require().NoError(yaml.Unmarshal([]byte(s.run("--config", cfg, "betweenness", s.path)), &rep))
	s.Equal("cg", rep.Solver)
	s.False(rep.Normalized)

	// flags win over the file
	rep = nodeReport{}
	s.Require().NoError(yaml.Unmarshal([]byte(s.run("--config", cfg, "--solver", "full", "betweenness", s.path)), &rep))
	s.Equal("full", rep.Solver)

	var part partitionReport
	s.Require().NoError(yaml.Unmarshal([]byte(s.run("--config", cfg, "partition", s.barbell)), &part))
	s.Equal(4, part.K)
	s.Len(part.Communities, 4)
}

func (s *CLISuite) TestDebugLogging() {
	_, errOut, err := execute("", "--log-level", "debug", "betweenness", s.path)
	s.Require().NoError(err)
	s.Contains(errOut, "graph loaded")
	s.Contains(errOut, "nodes=4")
}

func (s *CLISuite) TestTrace() {
	_, errOut, err := execute("", "--trace", "edge-betweenness", s.path)
	s.Require().NoError(err)
	s.Contains(errOut, "EdgeCurrentFlowBetweenness")
}

func (s *CLISuite) TestErrors() {
	_, _, err := execute("", "betweenness", filepath.Join(s.T().TempDir(), "missing.txt"))
	s.Require().ErrorIs(err, os.ErrNotExist)

	disconnected := writeFile(s.T(), "split.txt", "a b\nc d\n")
	_, _, err = execute("", "betweenness", disconnected)
	s.Require().ErrorIs(err, centrality.ErrNotConnected)

	_, _, err = execute("", "--solver", "qr", "betweenness", s.path)
	s.Require().Error(err)

	_, _, err = execute("", "--log-level", "loud", "betweenness", s.path)
	s.Require().Error(err)

	_, _, err = execute("", "betweenness")
	s.Require().Error(err)
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func TestReadEdgeList(t *testing.T) {
	src := `# header
a b 2.5
b c        # default weight
d
`
	g, err := readEdgeList(strings.NewReader(src), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())

	weights := map[string]float64{}
	for _, e := range g.Edges() {
		weights[e.From+e.To] = e.Weight
	}
	assert.Equal(t, map[string]float64{"ab": 2.5, "bc": 1}, weights)

	plain, err := readEdgeList(strings.NewReader(src), false)
	require.NoError(t, err)
	assert.False(t, plain.Weighted())
	for _, e := range plain.Edges() {
		assert.Zero(t, e.Weight)
	}
}

func TestReadEdgeList_Errors(t *testing.T) {
	_, err := readEdgeList(strings.NewReader("a b c d\n"), false)
	assert.ErrorIs(t, err, errEdgeLine)

	_, err = readEdgeList(strings.NewReader("a b x\n"), true)
	assert.ErrorIs(t, err, errEdgeLine)

	_, err = readEdgeList(strings.NewReader("a b\nb a\n"), false)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	p := writeFile(t, "c.yaml", "approx:\n  epsilon: 0.1\n")
	cfg, err = loadConfig(p)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, cfg.Approx.Epsilon, 0)
	assert.Equal(t, centrality.DefaultKMax, cfg.Approx.KMax)
	assert.True(t, cfg.Normalized)

	_, err = loadConfig(writeFile(t, "bad.yaml", "solvr: lu\n"))
	assert.Error(t, err)

	_, err = loadConfig(writeFile(t, "empty.yaml", ""))
	assert.ErrorIs(t, err, errEmptyConfig)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, summary{}, summarize(nil))
	assert.Equal(t, summary{Count: 1, Mean: 3, Min: 3, Max: 3}, summarize([]float64{3}))

	s := summarize([]float64{1, 2, 3})
	assert.InDelta(t, 2, s.Mean, 1e-12)
	assert.InDelta(t, 1, s.StdDev, 1e-12)
}
