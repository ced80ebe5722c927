package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcurrent/core"
)

const version = "0.1.0"

// app carries the streams and resolved settings shared by all subcommands.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	configPath string
	flags      flagValues

	cfg    Config
	logger *slog.Logger
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	def := defaultConfig()

	root := &cobra.Command{
		Use:           "lvcurrent",
		Short:         "Current-flow centrality and community tools for graphs",
		Long:          "lvcurrent reads an undirected edge list and reports current-flow betweenness,\ncurrent-flow communities or the knotty centre as YAML.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.flags.logLevel, "log-level", def.LogLevel, "log level: debug, info, warn or error")
	pf.BoolVar(&a.flags.weighted, "weighted", def.Weighted, "read the third column as edge conductance")
	pf.BoolVar(&a.flags.normalized, "normalized", def.Normalized, "normalize betweenness scores")
	pf.StringVar(&a.flags.solver, "solver", def.Solver, "inverse Laplacian solver: full, lu or cg (default depends on the command)")
	pf.BoolVar(&a.flags.trace, "trace", def.Trace, "print OpenTelemetry spans to stderr")

	root.AddCommand(
		newBetweennessCmd(a),
		newEdgeBetweennessCmd(a),
		newApproxCmd(a),
		newPartitionCmd(a),
		newKnottyCmd(a),
	)

	return root
}

// run resolves configuration, reads the graph named by args and calls fn
// with tracing installed for the duration of the call.
func (a *app) run(cmd *cobra.Command, args []string, fn func(ctx context.Context, g *core.Graph) error) (err error) {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.flags.apply(&cfg, cmd.Flags())
	a.cfg = cfg

	if a.logger, err = newLogger(a.stderr, cfg.LogLevel); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Trace {
		shutdown, terr := setupTracing(a.stderr)
		if terr != nil {
			return terr
		}
		defer func() {
			err = errors.Join(err, shutdown(context.Background()))
		}()
	}

	g, err := a.readGraph(args[0])
	if err != nil {
		return err
	}
	a.logger.Debug("graph loaded",
		slog.String("source", args[0]),
		slog.Int("nodes", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Bool("weighted", cfg.Weighted),
	)

	return fn(ctx, g)
}

func (a *app) readGraph(name string) (*core.Graph, error) {
	if name == "-" {
		return readEdgeList(a.stdin, a.cfg.Weighted)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open graph: %w", err)
	}
	defer f.Close()

	return readEdgeList(f, a.cfg.Weighted)
}
