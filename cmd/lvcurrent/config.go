package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcurrent/centrality"
)

// Config is the YAML configuration file. Command-line flags override it.
type Config struct {
	Solver     string          `yaml:"solver"`
	Weighted   bool            `yaml:"weighted"`
	Normalized bool            `yaml:"normalized"`
	LogLevel   string          `yaml:"log_level"`
	Trace      bool            `yaml:"trace"`
	Approx     ApproxConfig    `yaml:"approx"`
	Partition  PartitionConfig `yaml:"partition"`
	Knotty     KnottyConfig    `yaml:"knotty"`
}

// ApproxConfig tunes the sampling estimator.
type ApproxConfig struct {
	Epsilon float64 `yaml:"epsilon"`
	KMax    int     `yaml:"kmax"`
	Seed    uint64  `yaml:"seed"`
}

// PartitionConfig tunes divisive partitioning.
type PartitionConfig struct {
	K      int    `yaml:"k"`
	Method string `yaml:"method"`
}

// KnottyConfig tunes the knotty centre search.
type KnottyConfig struct {
	Compact bool `yaml:"compact"`
}

func defaultConfig() Config {
	return Config{
		Normalized: true,
		LogLevel:   "warn",
		Approx: ApproxConfig{
			Epsilon: centrality.DefaultEpsilon,
			KMax:    centrality.DefaultKMax,
			Seed:    centrality.DefaultSeed,
		},
		Partition: PartitionConfig{K: 2, Method: methodCurrentFlow},
		Knotty:    KnottyConfig{Compact: true},
	}
}

var errEmptyConfig = errors.New("config: file is empty")

// loadConfig overlays the YAML file at path onto the defaults.
// Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("%w: %s", errEmptyConfig, path)
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// flagValues mirrors the flags that may override Config.
type flagValues struct {
	solver     string
	weighted   bool
	normalized bool
	logLevel   string
	trace      bool
	epsilon    float64
	kmax       int
	seed       uint64
	k          int
	method     string
	compact    bool
}

// apply copies every flag the user set explicitly into cfg.
func (f *flagValues) apply(cfg *Config, fs *pflag.FlagSet) {
	set := func(name string, fn func()) {
		if fl := fs.Lookup(name); fl != nil && fl.Changed {
			fn()
		}
	}
	set("solver", func() { cfg.Solver = f.solver })
	set("weighted", func() { cfg.Weighted = f.weighted })
	set("normalized", func() { cfg.Normalized = f.normalized })
	set("log-level", func() { cfg.LogLevel = f.logLevel })
	set("trace", func() { cfg.Trace = f.trace })
	set("epsilon", func() { cfg.Approx.Epsilon = f.epsilon })
	set("kmax", func() { cfg.Approx.KMax = f.kmax })
	set("seed", func() { cfg.Approx.Seed = f.seed })
	set("k", func() { cfg.Partition.K = f.k })
	set("method", func() { cfg.Partition.Method = f.method })
	set("compact", func() { cfg.Knotty.Compact = f.compact })
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
