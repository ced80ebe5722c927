// SPDX-License-Identifier: MIT

package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvcurrent/builder"
	"github.com/katalvlaran/lvcurrent/core"
	"github.com/katalvlaran/lvcurrent/laplacian"
	"github.com/katalvlaran/lvcurrent/ordering"
	"github.com/katalvlaran/lvcurrent/solver"
)

const agreeTol = 1e-8

var kinds = []solver.Kind{solver.Full, solver.LU, solver.CG}

func laplacianOf(t testing.TB, g *core.Graph) *laplacian.Laplacian {
	t.Helper()
	ord, err := ordering.ReverseCuthillMcKee(g)
	require.NoError(t, err)
	l, err := laplacian.Build(g, ord, laplacian.WithWeights(true))
	require.NoError(t, err)

	return l
}

type SolverSuite struct {
	suite.Suite
	l *laplacian.Laplacian
}

func (s *SolverSuite) SetupTest() {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(0.25, 4)},
		builder.Grid(4, 5),
	)
	s.Require().NoError(err)
	s.l = laplacianOf(s.T(), g)
}

func (s *SolverSuite) TestRowsAgree() {
	ref, err := solver.New(solver.Full, s.l)
	s.Require().NoError(err)
	for _, k := range kinds[1:] {
		inv, err := solver.New(k, s.l)
		s.Require().NoError(err, k.String())
		for r := 0; r < s.l.N(); r++ {
			want, err := ref.Row(r)
			s.Require().NoError(err)
			got, err := inv.Row(r)
			s.Require().NoError(err)
			s.InDeltaSlice(want, got, agreeTol, "%s row %d", k, r)
		}
	}
}

func (s *SolverSuite) TestSolveSatisfiesLaplacian() {
	n := s.l.N()
	b := make([]float64, n)
	b[3], b[n-2] = 1, -1
	for _, k := range kinds {
		inv, err := solver.New(k, s.l)
		s.Require().NoError(err)
		p, err := inv.Solve(b)
		s.Require().NoError(err)
		s.Equal(0.0, p[0], k.String())

		lp := make([]float64, n)
		s.Require().NoError(s.l.MulVec(lp, p))
		s.InDeltaSlice(b, lp, agreeTol, k.String())
	}
}

func (s *SolverSuite) TestRowZeroIsGround() {
	for _, k := range kinds {
		inv, err := solver.New(k, s.l)
		s.Require().NoError(err)
		row, err := inv.Row(0)
		s.Require().NoError(err)
		s.Equal(make([]float64, s.l.N()), row, k.String())
		s.Equal(s.l.N(), inv.N())
		s.GreaterOrEqual(inv.Width(), 1)
	}
}

func (s *SolverSuite) TestRowOrderDoesNotMatter() {
	for _, k := range kinds {
		inv, err := solver.New(k, s.l)
		s.Require().NoError(err)
		first, err := inv.Row(7)
		s.Require().NoError(err)
		first = append([]float64(nil), first...)
		for r := s.l.N() - 1; r >= 0; r-- {
			_, err := inv.Row(r)
			s.Require().NoError(err)
		}
		again, err := inv.Row(7)
		s.Require().NoError(err)
		s.InDeltaSlice(first, again, 1e-12, k.String())
	}
}

func (s *SolverSuite) TestBadInput() {
	for _, k := range kinds {
		inv, err := solver.New(k, s.l)
		s.Require().NoError(err)
		_, err = inv.Row(s.l.N())
		s.ErrorIs(err, solver.ErrRowOutOfRange)
		_, err = inv.Solve(make([]float64, 2))
		s.ErrorIs(err, solver.ErrDimensionMismatch)
	}
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

func TestPathInverse(t *testing.T) {
	// Grounded at node 0, the effective resistance to node i on a unit path
	// is i, so the pinned inverse is min(i, j).
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)
	ord, err := ordering.Identity(g)
	require.NoError(t, err)
	l, err := laplacian.Build(g, ord)
	require.NoError(t, err)
	for _, k := range kinds {
		inv, err := solver.New(k, l)
		require.NoError(t, err)
		for i := 0; i < 4; i++ {
			row, err := inv.Row(i)
			require.NoError(t, err)
			for j := 0; j < 4; j++ {
				assert.InDelta(t, float64(min(i, j)), row[j], agreeTol, "%s [%d][%d]", k, i, j)
			}
		}
	}
}

func TestSingular(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("0", "1", 0)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("2"))
	ord, err := ordering.Identity(g)
	require.NoError(t, err)
	l, err := laplacian.Build(g, ord)
	require.NoError(t, err)

	for _, k := range kinds {
		_, err := solver.New(k, l)
		assert.ErrorIs(t, err, solver.ErrSingular, k.String())
	}
}

func TestNotConverged(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(6, 6))
	require.NoError(t, err)
	inv, err := solver.New(solver.CG, laplacianOf(t, g), solver.WithMaxIterations(1))
	require.NoError(t, err)
	_, err = inv.Row(20)
	assert.ErrorIs(t, err, solver.ErrNotConverged)
}

func TestSingleNode(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("x"))
	ord, err := ordering.Identity(g)
	require.NoError(t, err)
	l, err := laplacian.Build(g, ord)
	require.NoError(t, err)
	for _, k := range kinds {
		inv, err := solver.New(k, l)
		require.NoError(t, err)
		row, err := inv.Row(0)
		require.NoError(t, err)
		assert.Equal(t, []float64{0}, row)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range kinds {
		got, err := solver.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := solver.ParseKind(" LU ")
	require.NoError(t, err)
	assert.Equal(t, solver.LU, got)

	_, err = solver.ParseKind("qr")
	assert.ErrorIs(t, err, solver.ErrUnknownSolver)

	_, err = solver.New(solver.Kind(9), nil)
	assert.ErrorIs(t, err, solver.ErrUnknownSolver)
	assert.Equal(t, "Kind(9)", solver.Kind(9).String())

	var k solver.Kind
	require.NoError(t, k.UnmarshalText([]byte("cg")))
	assert.Equal(t, solver.CG, k)
}

func BenchmarkRows(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(20, 20))
	require.NoError(b, err)
	l := laplacianOf(b, g)
	for _, k := range kinds {
		b.Run(k.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				inv, err := solver.New(k, l)
				if err != nil {
					b.Fatal(err)
				}
				for r := 0; r < l.N(); r++ {
					if _, err := inv.Row(r); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}
