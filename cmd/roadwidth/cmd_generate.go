package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/roadwidth/builder"
	"github.com/katalvlaran/roadwidth/config"
	"github.com/katalvlaran/roadwidth/core"
)

// runGenerate validates the counts, generates the graph and only then creates
// the output file, so a rejected request leaves nothing on disk.
func runGenerate(stdout io.Writer, logger *slog.Logger, cfg config.GeneratorConfig, numNodes, numEdges int, path string) error {
	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	g, err := builder.Generate(numNodes, numEdges,
		builder.WithSeed(seed),
		builder.WithWidthRange(cfg.MinRoadWidth, cfg.MaxRoadWidth),
	)
	if err != nil {
		if errors.Is(err, builder.ErrInvalidArgument) {
			return fmt.Errorf("%w: %v", errInvalidArgument, err)
		}
		return err
	}
	logger.Debug("graph generated", "nodes", numNodes, "edges", numEdges, "seed", seed,
		"min_width", cfg.MinRoadWidth, "max_width", cfg.MaxRoadWidth)

	if err = core.WriteFile(path, g); err != nil {
		return err
	}
	logger.Info("graph written", "path", path)
	_, err = fmt.Fprintf(stdout, "%d %d\n", g.NumNodes, g.NumEdges())

	return err
}
