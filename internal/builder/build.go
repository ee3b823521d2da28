package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/branchsim/internal/config"
	"github.com/vk/branchsim/internal/ctxlog"
	"github.com/vk/branchsim/internal/eventgraph"
	"github.com/vk/branchsim/internal/operation"
	"github.com/vk/branchsim/internal/registry"
)

// Build materializes the event graph described by the scenario model. The
// returned root holds the identity operation; each step's generator extends
// the current frontier with that step's bound operations, in declaration
// order. Operations referenced without an `operation` config entry are bound
// with an empty parameter set.
func Build[T any](ctx context.Context, model *config.Model, reg *registry.Registry[T]) (*eventgraph.Node[T], error) {
	logger := ctxlog.FromContext(ctx)

	if model.Scenario == nil {
		return nil, errors.New("configuration has no scenario")
	}

	root := eventgraph.NewNode(operation.Identity[T])
	frontier := []*eventgraph.Node[T]{root}

	for i, step := range model.Scenario.Steps {
		gen, err := reg.Generator(step.Generator)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		ops := make(eventgraph.OperationChain[T], 0, len(step.Operations))
		for _, name := range step.Operations {
			op, err := reg.Operation(name)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			params := operation.Params{}
			if cfg, ok := model.Operations[name]; ok {
				params = operation.Params(cfg.Params)
			}
			ops = append(ops, operation.Bind(op, params))
		}

		frontier = gen(frontier, ops)
		logger.Debug("Applied scenario step.",
			"step", i,
			"generator", step.Generator,
			"operations", len(ops),
			"frontier_size", len(frontier))
	}

	return root, nil
}
