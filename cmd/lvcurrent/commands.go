package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcurrent/centrality"
	"github.com/katalvlaran/lvcurrent/community"
	"github.com/katalvlaran/lvcurrent/core"
	"github.com/katalvlaran/lvcurrent/knotty"
	"github.com/katalvlaran/lvcurrent/solver"
)

const (
	methodCurrentFlow  = "current-flow"
	methodShortestPath = "shortest-path"
)

// solverKind resolves the configured solver name, falling back to def.
func (a *app) solverKind(def solver.Kind) (solver.Kind, error) {
	if a.cfg.Solver == "" {
		return def, nil
	}

	return solver.ParseKind(a.cfg.Solver)
}

func (a *app) centralityOptions(ctx context.Context, kind solver.Kind) []centrality.Option {
	opts := []centrality.Option{
		centrality.WithNormalized(a.cfg.Normalized),
		centrality.WithSolver(kind),
		centrality.WithContext(ctx),
		centrality.WithLogger(a.logger),
	}
	if a.cfg.Weighted {
		opts = append(opts, centrality.WithWeighted())
	}

	return opts
}

func newBetweennessCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "betweenness <edge-list|->",
		Short: "Exact current-flow betweenness of every node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, func(ctx context.Context, g *core.Graph) error {
				kind, err := a.solverKind(solver.LU)
				if err != nil {
					return err
				}
				scores, err := centrality.CurrentFlowBetweenness(g, a.centralityOptions(ctx, kind)...)
				if err != nil {
					return err
				}

				return writeYAML(a.stdout, newNodeReport("current-flow-betweenness", kind.String(), a.cfg.Normalized, scores))
			})
		},
	}
}

func newEdgeBetweennessCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edge-betweenness <edge-list|->",
		Short: "Exact current-flow betweenness of every edge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, func(ctx context.Context, g *core.Graph) error {
				kind, err := a.solverKind(solver.Full)
				if err != nil {
					return err
				}
				scores, err := centrality.EdgeCurrentFlowBetweenness(g, a.centralityOptions(ctx, kind)...)
				if err != nil {
					return err
				}

				return writeYAML(a.stdout, newEdgeReport(kind.String(), a.cfg.Normalized, scores))
			})
		},
	}
}

func newApproxCmd(a *app) *cobra.Command {
	def := defaultConfig()
	cmd := &cobra.Command{
		Use:   "approx <edge-list|->",
		Short: "Sampled current-flow betweenness of every node",
		Long: "approx estimates node current-flow betweenness from random source/sink pairs.\n" +
			"The sample count grows with n and 1/epsilon² and is capped by --kmax.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, func(ctx context.Context, g *core.Graph) error {
				kind, err := a.solverKind(solver.Full)
				if err != nil {
					return err
				}
				ac := a.cfg.Approx
				opts := append(a.centralityOptions(ctx, kind),
					centrality.WithEpsilon(ac.Epsilon),
					centrality.WithKMax(ac.KMax),
					centrality.WithSeed(ac.Seed),
				)
				scores, err := centrality.ApproximateCurrentFlowBetweenness(g, opts...)
				if err != nil {
					return err
				}
				rep := newNodeReport("approximate-current-flow-betweenness", kind.String(), a.cfg.Normalized, scores)
				if rep.Samples, err = centrality.RequiredSamples(g.VertexCount(), ac.Epsilon); err != nil {
					return err
				}

				return writeYAML(a.stdout, rep)
			})
		},
	}
	fs := cmd.Flags()
	fs.Float64Var(&a.flags.epsilon, "epsilon", def.Approx.Epsilon, "absolute error bound of the estimate")
	fs.IntVar(&a.flags.kmax, "kmax", def.Approx.KMax, "maximum number of samples")
	fs.Uint64Var(&a.flags.seed, "seed", def.Approx.Seed, "random seed")

	return cmd
}

func newPartitionCmd(a *app) *cobra.Command {
	def := defaultConfig()
	cmd := &cobra.Command{
		Use:   "partition <edge-list|->",
		Short: "Split the graph into k communities by removing central edges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, func(ctx context.Context, g *core.Graph) error {
				pc := a.cfg.Partition
				opts := []community.Option{
					community.WithContext(ctx),
					community.WithLogger(a.logger),
				}
				if a.cfg.Weighted {
					opts = append(opts, community.WithWeighted())
				}

				var (
					comps [][]string
					err   error
				)
				switch pc.Method {
				case methodCurrentFlow:
					kind, kerr := a.solverKind(solver.Full)
					if kerr != nil {
						return kerr
					}
					opts = append(opts, community.WithSolver(kind))
					comps, err = community.EdgeCurrentFlowBetweennessPartition(g, pc.K, opts...)
				case methodShortestPath:
					comps, err = community.EdgeBetweennessPartition(g, pc.K, opts...)
				default:
					return fmt.Errorf("unknown partition method %q (want %s or %s)", pc.Method, methodCurrentFlow, methodShortestPath)
				}
				if err != nil {
					return err
				}

				return writeYAML(a.stdout, partitionReport{
					Algorithm:   "partition",
					Method:      pc.Method,
					K:           pc.K,
					Communities: comps,
				})
			})
		},
	}
	fs := cmd.Flags()
	fs.IntVarP(&a.flags.k, "k", "k", def.Partition.K, "number of communities")
	fs.StringVar(&a.flags.method, "method", def.Partition.Method, "edge scoring: current-flow or shortest-path")

	return cmd
}

func newKnottyCmd(a *app) *cobra.Command {
	def := defaultConfig()
	cmd := &cobra.Command{
		Use:   "knotty <edge-list|->",
		Short: "Find the knotty centre of the graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, func(_ context.Context, g *core.Graph) error {
				compact := a.cfg.Knotty.Compact
				res, err := knotty.Centre(g, knotty.WithCompact(compact), knotty.WithLogger(a.logger))
				if err != nil {
					return err
				}

				return writeYAML(a.stdout, knottyReport{
					Algorithm: "knotty",
					Compact:   compact,
					Nodes:     res.Nodes,
					Score:     res.Score,
				})
			})
		},
	}
	cmd.Flags().BoolVar(&a.flags.compact, "compact", def.Knotty.Compact, "scale the score by subset size")

	return cmd
}
