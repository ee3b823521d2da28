// Package generator provides the graph-construction strategies that grow an
// event graph from a declarative scenario. Each generator consumes the
// current frontier (the graph's open leaves) and an operation chain, attaches
// new structure, and returns the next frontier.
package generator

import "github.com/vk/branchsim/internal/eventgraph"

// Func is the uniform signature shared by all generators, so that a scenario
// step can select one by name through the registry.
type Func[T any] func(frontier []*eventgraph.Node[T], ops eventgraph.OperationChain[T]) []*eventgraph.Node[T]

// Sequence builds a linear chain of nodes, one per operation, and attaches
// the chain's head as a follower of every frontier node. The chain's tail is
// the sole node of the new frontier: the operations run one after another as
// a continuation of every branch currently open. An empty operation chain is
// a no-op returning the frontier unchanged.
func Sequence[T any](frontier []*eventgraph.Node[T], ops eventgraph.OperationChain[T]) []*eventgraph.Node[T] {
	if len(ops) == 0 {
		return frontier
	}

	head := eventgraph.NewNode(ops[0])
	tail := head
	for _, op := range ops[1:] {
		next := eventgraph.NewNode(op)
		tail.AddFollower(next)
		tail = next
	}

	for _, prev := range frontier {
		prev.AddFollower(head)
	}
	return []*eventgraph.Node[T]{tail}
}

// Alternatives builds one sibling node per operation and attaches every one
// of them as a follower of every frontier node: from each open branch the
// operations are mutually exclusive next events. The new siblings are the new
// frontier. An empty operation chain is a no-op returning the frontier
// unchanged.
func Alternatives[T any](frontier []*eventgraph.Node[T], ops eventgraph.OperationChain[T]) []*eventgraph.Node[T] {
	if len(ops) == 0 {
		return frontier
	}

	nodes := make([]*eventgraph.Node[T], 0, len(ops))
	for _, op := range ops {
		nodes = append(nodes, eventgraph.NewNode(op))
	}

	for _, prev := range frontier {
		for _, node := range nodes {
			prev.AddFollower(node)
		}
	}
	return nodes
}
