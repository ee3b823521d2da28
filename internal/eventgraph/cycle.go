package eventgraph

import "errors"

// ErrCycle is returned by DetectCycles when the graph reachable from the
// receiver is not acyclic.
var ErrCycle = errors.New("cycle detected in event graph")

// DetectCycles walks every path reachable from n and returns ErrCycle if any
// path revisits a node. Traversal and evaluation assume acyclicity without
// checking it, so callers that build graphs from untrusted input can run this
// once before evaluating.
func (n *Node[T]) DetectCycles() error {
	// Classic depth-first search with two marks per node:
	// permanent: fully visited, known not to be part of a cycle.
	// temporary: currently on the recursion stack.
	permanent := make(map[*Node[T]]bool)
	temporary := make(map[*Node[T]]bool)

	var visit func(node *Node[T]) error
	visit = func(node *Node[T]) error {
		if permanent[node] {
			return nil
		}
		if temporary[node] {
			return ErrCycle
		}

		temporary[node] = true
		for _, follower := range node.followers {
			if err := visit(follower); err != nil {
				return err
			}
		}
		delete(temporary, node)
		permanent[node] = true

		return nil
	}
	return visit(n)
}
