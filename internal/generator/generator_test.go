package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/branchsim/internal/eventgraph"
)

func increment(x int) (int, error) { return x + 1, nil }
func doNothing(x int) (int, error) { return x, nil }

func ops(op eventgraph.Operation[int], times int) eventgraph.OperationChain[int] {
	chain := make(eventgraph.OperationChain[int], 0, times)
	for i := 0; i < times; i++ {
		chain = append(chain, op)
	}
	return chain
}

func TestSequence(t *testing.T) {
	t.Run("empty chain returns frontier unchanged", func(t *testing.T) {
		root := eventgraph.NewNode(doNothing)
		frontier := []*eventgraph.Node[int]{root}

		next := Sequence(frontier, nil)
		require.Len(t, next, 1)
		assert.Same(t, root, next[0])
		assert.True(t, root.IsLeaf())
	})

	t.Run("chain is linear and ends in one leaf", func(t *testing.T) {
		root := eventgraph.NewNode(doNothing)
		next := Sequence([]*eventgraph.Node[int]{root}, ops(increment, 3))

		require.Len(t, next, 1)
		chains := root.Chains()
		require.Len(t, chains, 1)
		assert.Len(t, chains[0], 4)
		assert.Same(t, next[0], chains[0][3])

		results, err := root.EvaluateDepthFirst(0)
		require.NoError(t, err)
		assert.Equal(t, []int{3}, results)
	})

	t.Run("continuation of every open branch", func(t *testing.T) {
		root := eventgraph.NewNode(doNothing)
		frontier := Alternatives([]*eventgraph.Node[int]{root}, ops(increment, 2))
		next := Sequence(frontier, ops(increment, 2))

		// Both branches funnel into the same shared chain head.
		require.Len(t, next, 1)
		require.Len(t, frontier[0].Followers(), 1)
		require.Len(t, frontier[1].Followers(), 1)
		assert.Same(t, frontier[0].Followers()[0], frontier[1].Followers()[0])

		results, err := root.EvaluateDepthFirst(0)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 3}, results)
	})
}

func TestAlternatives(t *testing.T) {
	t.Run("empty chain returns frontier unchanged", func(t *testing.T) {
		root := eventgraph.NewNode(doNothing)
		frontier := []*eventgraph.Node[int]{root}

		next := Alternatives(frontier, nil)
		require.Len(t, next, 1)
		assert.Same(t, root, next[0])
	})

	t.Run("full fan-out across the frontier", func(t *testing.T) {
		a := eventgraph.NewNode(doNothing)
		b := eventgraph.NewNode(doNothing)
		frontier := []*eventgraph.Node[int]{a, b}

		next := Alternatives(frontier, ops(increment, 3))

		// |frontier| = 2 and |ops| = 3: frontier of 3 shared nodes, 3 new
		// edges out of every predecessor.
		require.Len(t, next, 3)
		require.Len(t, a.Followers(), 3)
		require.Len(t, b.Followers(), 3)
		for i := range next {
			assert.Same(t, next[i], a.Followers()[i])
			assert.Same(t, next[i], b.Followers()[i])
		}

		// From a single predecessor each alternative is a distinct branch.
		results, err := a.EvaluateDepthFirst(0)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 1, 1}, results)
	})
}

func TestGeneratorsCompose(t *testing.T) {
	root := eventgraph.NewNode(doNothing)

	level1 := Sequence([]*eventgraph.Node[int]{root}, ops(increment, 2))
	level2 := Alternatives(level1, ops(increment, 2))
	level3 := Alternatives(level2, ops(increment, 2))

	byChain, err := root.EvaluateByChain(0)
	require.NoError(t, err)
	depthFirst, err := root.EvaluateDepthFirst(0)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 4, 4, 4}, byChain)
	assert.Equal(t, []int{4, 4, 4, 4}, depthFirst)
	assert.Len(t, level3, 2)
}
