package eventgraph

// Operation is a single simulation event: a transition from one state value
// to the next. An operation that fails aborts the evaluation that invoked it.
type Operation[T any] func(state T) (T, error)

// OperationChain is an ordered list of operations consumed by one generator
// call. Every operation in the chain becomes exactly one new graph node.
type OperationChain[T any] []Operation[T]

// Chain is one complete path from a start node down to a leaf.
type Chain[T any] []*Node[T]

// Node is a single event in the graph. Followers are shared pointers, so a
// node may be listed as a follower of several predecessors and live as long
// as any predecessor or frontier still references it.
type Node[T any] struct {
	operation Operation[T]
	followers []*Node[T]
}

// NewNode creates a node holding the given operation and no followers.
func NewNode[T any](op Operation[T]) *Node[T] {
	return &Node[T]{operation: op}
}

// AddFollower appends other to the node's followers. No structural validation
// is performed; keeping the graph acyclic is the caller's responsibility.
func (n *Node[T]) AddFollower(other *Node[T]) {
	n.followers = append(n.followers, other)
}

// Followers returns the node's followers in attachment order.
func (n *Node[T]) Followers() []*Node[T] {
	return n.followers
}

// IsLeaf reports whether the node has no followers.
func (n *Node[T]) IsLeaf() bool {
	return len(n.followers) == 0
}

// Apply runs the node's operation on the given state.
func (n *Node[T]) Apply(state T) (T, error) {
	return n.operation(state)
}

// CollectLeafNodes returns every leaf reachable from n in depth-first,
// follower order. A node with no followers is its own single leaf. The result
// is the frontier of the subgraph rooted at n, ready for further extension.
func (n *Node[T]) CollectLeafNodes() []*Node[T] {
	if n.IsLeaf() {
		return []*Node[T]{n}
	}
	var leaves []*Node[T]
	for _, follower := range n.followers {
		leaves = append(leaves, follower.CollectLeafNodes()...)
	}
	return leaves
}

// Chains enumerates every root-to-leaf path starting at n. The order is
// deterministic: a depth-first, left-to-right walk in follower order, so the
// i-th chain ends at the i-th leaf returned by CollectLeafNodes.
func (n *Node[T]) Chains() []Chain[T] {
	if n.IsLeaf() {
		return []Chain[T]{{n}}
	}
	var chains []Chain[T]
	for _, follower := range n.followers {
		for _, sub := range follower.Chains() {
			chain := make(Chain[T], 0, len(sub)+1)
			chain = append(chain, n)
			chain = append(chain, sub...)
			chains = append(chains, chain)
		}
	}
	return chains
}

// EvaluateByChain folds every chain's operations over initial, left to right,
// and returns one final state per chain in Chains order. The first failing
// operation aborts the whole evaluation.
func (n *Node[T]) EvaluateByChain(initial T) ([]T, error) {
	chains := n.Chains()
	results := make([]T, 0, len(chains))
	for _, chain := range chains {
		state := initial
		for _, node := range chain {
			var err error
			state, err = node.operation(state)
			if err != nil {
				return nil, err
			}
		}
		results = append(results, state)
	}
	return results, nil
}

// EvaluateDepthFirst applies n's operation to initial and propagates the
// outcome into each follower, producing one final state per reachable leaf in
// follower order. For every acyclic graph the result sequence is identical to
// EvaluateByChain; the two differ only in whether intermediate chains are
// materialized.
//
// The walk uses an explicit work list instead of recursion, so very deep
// linear graphs cannot exhaust the goroutine stack.
func (n *Node[T]) EvaluateDepthFirst(initial T) ([]T, error) {
	type frame struct {
		node  *Node[T]
		state T
	}
	stack := []frame{{node: n, state: initial}}
	var results []T
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		current, err := top.node.operation(top.state)
		if err != nil {
			return nil, err
		}
		if top.node.IsLeaf() {
			results = append(results, current)
			continue
		}
		// Push followers in reverse so they are visited in attachment order.
		for i := len(top.node.followers) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: top.node.followers[i], state: current})
		}
	}
	return results, nil
}
