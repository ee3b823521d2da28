package operation

import "github.com/vk/branchsim/internal/eventgraph"

// Parametered is a state transition that additionally reads a parameter set.
// Missing or malformed parameters are the operation's own failure to report;
// the engine propagates such errors to the evaluation caller unchanged.
type Parametered[T any] func(state T, params Params) (T, error)

// Bind fixes params into op, producing a unary operation usable as a graph
// node payload. The parameter set is copied at bind time, so mutating the
// caller's map afterwards cannot affect operations that were already bound.
func Bind[T any](op Parametered[T], params Params) eventgraph.Operation[T] {
	captured := params.Clone()
	return func(state T) (T, error) {
		return op(state, captured)
	}
}

// Identity returns its input unchanged. It is the conventional payload for a
// scenario's root node.
func Identity[T any](state T) (T, error) {
	return state, nil
}
