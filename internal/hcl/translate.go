// This file contains the logic for translating HCL schema structs into the
// format-agnostic configuration model defined in the config package.

package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/branchsim/internal/config"
	"github.com/vk/branchsim/internal/schema"
)

// translateOperation converts an `operation` block into the agnostic model,
// flattening its params object into string key/value pairs.
func translateOperation(op *schema.Operation) (*config.OperationConfig, error) {
	params, err := paramsToStringMap(op.Params)
	if err != nil {
		return nil, fmt.Errorf("operation %q: %w", op.Name, err)
	}
	return &config.OperationConfig{Name: op.Name, Params: params}, nil
}

// translateScenario converts the `scenario` block into the agnostic model.
func translateScenario(s *schema.Scenario) (*config.Scenario, error) {
	scenario := &config.Scenario{}

	if s.InitialState != nil && !s.InitialState.IsNull() {
		num, err := convert.Convert(*s.InitialState, cty.Number)
		if err != nil {
			return nil, fmt.Errorf("initial_state must be a number: %w", err)
		}
		f, _ := num.AsBigFloat().Float64()
		scenario.InitialState = f
	}

	for _, step := range s.Steps {
		scenario.Steps = append(scenario.Steps, &config.Step{
			Generator:  step.Generator,
			Operations: step.Operations,
		})
	}
	return scenario, nil
}

// paramsToStringMap converts a params attribute value into a string map.
// Numbers and bools are accepted and rendered as strings, matching the
// string-typed parameter convention of the operation package.
func paramsToStringMap(v *cty.Value) (map[string]string, error) {
	params := make(map[string]string)
	if v == nil || v.IsNull() {
		return params, nil
	}

	converted, err := convert.Convert(*v, cty.Map(cty.String))
	if err != nil {
		return nil, fmt.Errorf("params must be a map of strings: %w", err)
	}
	if converted.IsNull() {
		return params, nil
	}
	for it := converted.ElementIterator(); it.Next(); {
		key, val := it.Element()
		params[key.AsString()] = val.AsString()
	}
	return params, nil
}
