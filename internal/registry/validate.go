package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/branchsim/internal/config"
	"github.com/vk/branchsim/internal/ctxlog"
)

// Validate checks that every name the scenario references resolves in the
// registry, so that resolution errors surface at startup rather than halfway
// through building a graph.
func (r *Registry[T]) Validate(ctx context.Context, model *config.Model) error {
	logger := ctxlog.FromContext(ctx)

	if model.Scenario == nil {
		return errors.New("configuration has no scenario")
	}

	for i, step := range model.Scenario.Steps {
		if _, ok := r.generators[step.Generator]; !ok {
			return fmt.Errorf("step %d: unknown generator %q", i, step.Generator)
		}
		for _, name := range step.Operations {
			if _, ok := r.operations[name]; !ok {
				return fmt.Errorf("step %d: unknown operation %q", i, name)
			}
		}
	}

	logger.Debug("Registry validation passed.", "steps", len(model.Scenario.Steps))
	return nil
}
