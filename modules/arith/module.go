// Package arith provides the built-in arithmetic operations available to
// scenario steps. Each operation transitions a float64 state and reads its
// tuning values from the parameter set bound at build time.
package arith

import (
	"github.com/vk/branchsim/internal/operation"
	"github.com/vk/branchsim/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the arithmetic operations with the engine.
func (m *Module) Register(r *registry.Registry[float64]) {
	r.RegisterOperation("add", Add)
	r.RegisterOperation("subtract", Subtract)
	r.RegisterOperation("multiply", Multiply)
	r.RegisterOperation("nothing", Nothing)
}

// Add increases the state by the "amount" parameter.
func Add(state float64, params operation.Params) (float64, error) {
	amount, err := params.Float("amount")
	if err != nil {
		return 0, err
	}
	return state + amount, nil
}

// Subtract decreases the state by the "amount" parameter.
func Subtract(state float64, params operation.Params) (float64, error) {
	amount, err := params.Float("amount")
	if err != nil {
		return 0, err
	}
	return state - amount, nil
}

// Multiply scales the state by the "factor" parameter.
func Multiply(state float64, params operation.Params) (float64, error) {
	factor, err := params.Float("factor")
	if err != nil {
		return 0, err
	}
	return state * factor, nil
}

// Nothing returns the state unchanged, ignoring all parameters.
func Nothing(state float64, _ operation.Params) (float64, error) {
	return state, nil
}
