package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/roadwidth/config"
	"github.com/spf13/cobra"
)

// errInvalidArgument marks malformed or out-of-range command-line operands.
var errInvalidArgument = errors.New("invalid argument")

// cliFlags holds every flag value bound on the root command.
type cliFlags struct {
	generate bool
	query    bool

	configPath string
	seed       int64
	minWidth   int64
	maxWidth   int64
	path       bool
	sparse     bool
	heap       bool
	verbose    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f cliFlags

	cmd := &cobra.Command{
		Use:   "roadwidth (-g <numNodes> <numEdges> | -t <sourceId> <targetId>) <filePath>",
		Short: "Generate road graphs and find the widest route between two nodes",
		Long: `roadwidth works on flat edge-list files ("numNodes numEdges" followed by
"from to width" lines).

  -g  generate a random connected graph with numNodes nodes and numEdges roads
  -t  report the feasible width range between sourceId and targetId`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.generate == f.query {
				return fmt.Errorf("%w: exactly one of -g or -t is required", errInvalidArgument)
			}
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			logger := newLogger(stderr, cfg.Log)

			a, err := parseInt(args[0])
			if err != nil {
				return err
			}
			b, err := parseInt(args[1])
			if err != nil {
				return err
			}
			if f.generate {
				return runGenerate(stdout, logger, cfg.Generator, a, b, args[2])
			}
			return runQuery(stdout, logger, cfg.Query, a, b, args[2])
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fl := cmd.Flags()
	fl.BoolVarP(&f.generate, "generate", "g", false, "generate a random connected graph")
	fl.BoolVarP(&f.query, "trip", "t", false, "query the feasible width between two nodes")
	fl.StringVar(&f.configPath, "config", "", "optional YAML configuration file")
	fl.Int64Var(&f.seed, "seed", 0, "RNG seed for -g (default: from config, else clock)")
	fl.Int64Var(&f.minWidth, "min-width", 0, "minimum road width for -g")
	fl.Int64Var(&f.maxWidth, "max-width", 0, "maximum road width for -g")
	fl.BoolVar(&f.path, "path", false, "print the reconstructed route for -t")
	fl.BoolVar(&f.sparse, "sparse", false, "use the sparse adjacency list for -t")
	fl.BoolVar(&f.heap, "heap", false, "use max-heap relaxation for -t")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging on stderr")

	return cmd
}

// resolveConfig loads the config file and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command, f cliFlags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}

	fl := cmd.Flags()
	if fl.Changed("seed") {
		seed := f.seed
		cfg.Generator.Seed = &seed
	}
	if fl.Changed("min-width") {
		cfg.Generator.MinRoadWidth = f.minWidth
	}
	if fl.Changed("max-width") {
		cfg.Generator.MaxRoadWidth = f.maxWidth
	}
	if f.path {
		cfg.Query.Reconstruct = true
	}
	if f.sparse {
		cfg.Query.Representation = "sparse"
	}
	if f.heap {
		cfg.Query.Strategy = "heap"
	}
	if f.verbose {
		cfg.Log.Level = "debug"
	}

	if err = cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("%w: %v", errInvalidArgument, err)
	}

	return cfg, nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", errInvalidArgument, s)
	}

	return v, nil
}
