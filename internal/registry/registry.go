package registry

import (
	"fmt"
	"log/slog"

	"github.com/vk/branchsim/internal/generator"
	"github.com/vk/branchsim/internal/operation"
)

// Module is the interface that operation packs implement to be registered.
type Module[T any] interface {
	Register(r *Registry[T])
}

// Registry holds the named generators and parameterized operations available
// to one application instance.
type Registry[T any] struct {
	generators map[string]generator.Func[T]
	operations map[string]operation.Parametered[T]
}

// New creates a Registry with the built-in generators pre-registered.
func New[T any]() *Registry[T] {
	r := &Registry[T]{
		generators: make(map[string]generator.Func[T]),
		operations: make(map[string]operation.Parametered[T]),
	}
	r.RegisterGenerator("sequence", generator.Sequence[T])
	r.RegisterGenerator("alternatives", generator.Alternatives[T])
	return r
}

// RegisterGenerator registers a graph-construction strategy under a name.
func (r *Registry[T]) RegisterGenerator(name string, fn generator.Func[T]) {
	if _, exists := r.generators[name]; exists {
		panic(fmt.Sprintf("generator with name '%s' already registered", name))
	}
	slog.Debug("Registering generator.", "name", name)
	r.generators[name] = fn
}

// RegisterOperation registers a parameterized operation under a name.
func (r *Registry[T]) RegisterOperation(name string, op operation.Parametered[T]) {
	if _, exists := r.operations[name]; exists {
		panic(fmt.Sprintf("operation with name '%s' already registered", name))
	}
	slog.Debug("Registering operation.", "name", name)
	r.operations[name] = op
}

// Generator resolves a generator by name.
func (r *Registry[T]) Generator(name string) (generator.Func[T], error) {
	fn, ok := r.generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown generator %q", name)
	}
	return fn, nil
}

// Operation resolves a parameterized operation by name.
func (r *Registry[T]) Operation(name string) (operation.Parametered[T], error) {
	op, ok := r.operations[name]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", name)
	}
	return op, nil
}
