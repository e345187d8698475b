package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/roadwidth/config"
	"github.com/katalvlaran/roadwidth/query"
	"github.com/katalvlaran/roadwidth/widest"
)

func runQuery(stdout io.Writer, logger *slog.Logger, cfg config.QueryConfig, source, target int, path string) error {
	repr, err := query.ParseRepresentation(cfg.Representation)
	if err != nil {
		return err
	}
	strategy, err := query.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	rep, err := query.Run(query.Request{
		Path:           path,
		Source:         source,
		Target:         target,
		Reconstruct:    cfg.Reconstruct,
		Representation: repr,
		Strategy:       strategy,
	}, query.WithLogger(logger))
	if err != nil {
		if errors.Is(err, widest.ErrVertexNotFound) {
			return fmt.Errorf("%w: %v", errInvalidArgument, err)
		}
		return err
	}

	_, err = rep.WriteTo(stdout)

	return err
}
