package app

import (
	"errors"
	"fmt"
)

// Evaluator names for Config.Evaluator.
const (
	EvaluatorDepthFirst = "depth"
	EvaluatorByChain    = "chain"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScenarioPath string // .hcl or .yaml scenario files

	// Evaluator selects the evaluation strategy: "depth" (depth-first
	// propagation) or "chain" (materialize chains, then fold each).
	Evaluator string

	// CheckCycles runs cycle detection on the built graph before evaluating.
	// Off by default: scenario files produced by the generators are acyclic
	// by construction.
	CheckCycles bool

	// InitialState overrides the scenario file's initial state when set.
	InitialState *float64

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScenarioPath == "" {
		return nil, errors.New("ScenarioPath is a required configuration field and cannot be empty")
	}
	if cfg.Evaluator == "" {
		cfg.Evaluator = EvaluatorDepthFirst
	}
	if cfg.Evaluator != EvaluatorDepthFirst && cfg.Evaluator != EvaluatorByChain {
		return nil, fmt.Errorf("invalid evaluator %q: must be %q or %q", cfg.Evaluator, EvaluatorDepthFirst, EvaluatorByChain)
	}

	return &cfg, nil
}
