// SPDX-License-Identifier: MIT

// Package config holds the YAML configuration of the fpseq command.
//
// Precedence, lowest first: Default(), the YAML file, FPSEQ_* environment
// variables. Command-line flags are applied by the caller on top.
//
//	database: /data/oeis/stripped.gz
//	field: p65521
//	workers: 8
//	top_k: 10
//	min_match: 6
//	max_order: 4
//	max_degree: 3
//	fit_transforms: false
//	ops: [id, binomial, euler]
//	log_level: info
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fpseq/field"
	"github.com/katalvlaran/fpseq/interpolate"
	"github.com/katalvlaran/fpseq/search"
	"github.com/katalvlaran/fpseq/series"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Field names accepted by Config.Field.
const (
	FieldP65521 = "p65521"
	FieldM31    = "m31"
	FieldM61    = "m61"
)

// Environment overrides.
const (
	EnvDatabase = "FPSEQ_DATABASE"
	EnvField    = "FPSEQ_FIELD"
	EnvWorkers  = "FPSEQ_WORKERS"
	EnvLogLevel = "FPSEQ_LOG_LEVEL"
)

var logLevels = []string{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"}

// Config is the decoded configuration file.
type Config struct {
	Database      string   `yaml:"database"`
	Field         string   `yaml:"field"`
	Workers       int      `yaml:"workers"` // 0: GOMAXPROCS
	TopK          int      `yaml:"top_k"`
	MinMatch      int      `yaml:"min_match"`
	MaxOrder      int      `yaml:"max_order"`
	MaxDegree     int      `yaml:"max_degree"`
	FitTransforms bool     `yaml:"fit_transforms"`
	Ops           []string `yaml:"ops"` // empty: every unary operator
	LogLevel      string   `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Database:  "stripped.gz",
		Field:     FieldP65521,
		TopK:      search.DefaultTopK,
		MinMatch:  search.DefaultMinMatch,
		MaxOrder:  interpolate.DefaultMaxOrder,
		MaxDegree: interpolate.DefaultMaxDegree,
		LogLevel:  "info",
	}
}

// Load overlays the YAML file at path (none when empty) and the environment
// on Default(), then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if err = decode(bytes.NewReader(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// decode rejects unknown keys so that typos do not pass silently.
func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvDatabase); v != "" {
		cfg.Database = v
	}
	if v := os.Getenv(EnvField); v != "" {
		cfg.Field = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvWorkers, v)
		}
		cfg.Workers = n
	}

	return nil
}

// Validate checks ranges and names; every error wraps ErrInvalid.
func (c Config) Validate() error {
	switch strings.ToLower(c.Field) {
	case FieldP65521, FieldM31, FieldM61:
	default:
		return fmt.Errorf("%w: field %q (want %s, %s or %s)", ErrInvalid, c.Field, FieldP65521, FieldM31, FieldM61)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	}
	if c.TopK < 1 {
		return fmt.Errorf("%w: top_k %d", ErrInvalid, c.TopK)
	}
	if c.MinMatch < 1 || c.MinMatch > series.N {
		return fmt.Errorf("%w: min_match %d not in [1, %d]", ErrInvalid, c.MinMatch, series.N)
	}
	if c.MaxOrder < 0 || c.MaxDegree < 0 {
		return fmt.Errorf("%w: max_order %d, max_degree %d", ErrInvalid, c.MaxOrder, c.MaxDegree)
	}
	for _, name := range c.Ops {
		// the registry is the same for every field
		if _, err := series.LookupUnary[field.P65521](name); err != nil {
			return fmt.Errorf("%w: ops: %w", ErrInvalid, err)
		}
	}
	if !validLevel(c.LogLevel) {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	return nil
}

// FitOptions converts the fitting bounds.
func (c Config) FitOptions() interpolate.Options {
	o := interpolate.DefaultOptions()
	o.MaxOrder = c.MaxOrder
	o.MaxDegree = c.MaxDegree

	return o
}

// SearchOptions converts the engine settings.
func (c Config) SearchOptions() []search.Option {
	opts := []search.Option{
		search.WithWorkers(c.Workers),
		search.WithTopK(c.TopK),
		search.WithMinMatch(c.MinMatch),
		search.WithFitOptions(c.FitOptions()),
		search.WithFitTransforms(c.FitTransforms),
	}
	if len(c.Ops) > 0 {
		opts = append(opts, search.WithOps(c.Ops...))
	}

	return opts
}

func validLevel(l string) bool {
	l = strings.ToLower(l)
	for _, v := range logLevels {
		if l == v {
			return true
		}
	}

	return false
}
