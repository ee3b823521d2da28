package eventgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCycles(t *testing.T) {
	t.Run("single node has no cycles", func(t *testing.T) {
		n := NewNode(increment)
		assert.NoError(t, n.DetectCycles())
	})

	t.Run("valid dag has no cycles", func(t *testing.T) {
		root := createFixture()
		assert.NoError(t, root.DetectCycles())
	})

	t.Run("shared follower is not a cycle", func(t *testing.T) {
		root := createFixture()
		shared := NewNode(increment)
		for _, leaf := range root.CollectLeafNodes() {
			leaf.AddFollower(shared)
		}
		assert.NoError(t, root.DetectCycles())
	})

	t.Run("self loop is detected", func(t *testing.T) {
		n := NewNode(increment)
		n.AddFollower(n)
		err := n.DetectCycles()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCycle)
	})

	t.Run("longer cycle is detected", func(t *testing.T) {
		a := NewNode(increment)
		b := NewNode(increment)
		c := NewNode(increment)
		a.AddFollower(b)
		b.AddFollower(c)
		c.AddFollower(a)
		assert.ErrorIs(t, a.DetectCycles(), ErrCycle)
	})
}
