package app

import (
	"context"
	"fmt"

	"github.com/vk/branchsim/internal/builder"
	"github.com/vk/branchsim/internal/ctxlog"
)

// Run executes the main application logic based on the provided configuration:
// build the event graph from the scenario, optionally check it for cycles,
// evaluate it, and write one final state per reachable leaf to the output.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	root, err := builder.Build(ctx, a.model, a.reg)
	if err != nil {
		return fmt.Errorf("failed to build event graph: %w", err)
	}
	a.logger.Debug("Event graph built.", "leaves", len(root.CollectLeafNodes()))

	if appConfig.CheckCycles {
		if err := root.DetectCycles(); err != nil {
			return fmt.Errorf("event graph validation failed: %w", err)
		}
		a.logger.Debug("Cycle detection passed.")
	}

	initial := a.model.Scenario.InitialState
	if appConfig.InitialState != nil {
		initial = *appConfig.InitialState
	}

	var results []float64
	switch appConfig.Evaluator {
	case EvaluatorByChain:
		results, err = root.EvaluateByChain(initial)
	default:
		results, err = root.EvaluateDepthFirst(initial)
	}
	if err != nil {
		return fmt.Errorf("scenario evaluation failed: %w", err)
	}

	a.logger.Info("Scenario evaluated.",
		"evaluator", appConfig.Evaluator,
		"initial_state", initial,
		"branches", len(results))

	for _, result := range results {
		fmt.Fprintf(a.outW, "%g\n", result)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
