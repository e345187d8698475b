// Package config loads roadwidth's optional YAML configuration.
//
// Every field has a deterministic default (see Default), so a missing file is
// never an error for callers that pass an empty path. Values present in the
// file override defaults; command-line flags override both.
//
// Example file:
//
//	generator:
//	  min_road_width: 10
//	  max_road_width: 500
//	  seed: 42
//	query:
//	  representation: sparse
//	  strategy: heap
//	  reconstruct: true
//	log:
//	  level: debug
//	  format: json
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration that failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the root of the YAML document.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Query     QueryConfig     `yaml:"query"`
	Log       LogConfig       `yaml:"log"`
}

// GeneratorConfig controls random graph generation.
type GeneratorConfig struct {
	// MinRoadWidth and MaxRoadWidth bound the uniform width draw (inclusive).
	MinRoadWidth int64 `yaml:"min_road_width" validate:"gte=1"`
	MaxRoadWidth int64 `yaml:"max_road_width" validate:"gtefield=MinRoadWidth"`

	// Seed fixes the RNG; nil means seed from the clock.
	Seed *int64 `yaml:"seed,omitempty"`
}

// QueryConfig controls how a widest-path query is evaluated.
type QueryConfig struct {
	Representation string `yaml:"representation" validate:"oneof=dense sparse"`
	Strategy       string `yaml:"strategy" validate:"oneof=queue heap"`
	Reconstruct    bool   `yaml:"reconstruct"`
}

// LogConfig controls the slog handler built by the CLI.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Generator: GeneratorConfig{
			MinRoadWidth: 1,
			MaxRoadWidth: 100,
		},
		Query: QueryConfig{
			Representation: "dense",
			Strategy:       "queue",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Validate checks every field constraint and wraps failures in ErrInvalidConfig.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Load reads path over the defaults and validates the result.
// An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	return Parse(data, cfg)
}

// Parse unmarshals data over base and validates the result.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
