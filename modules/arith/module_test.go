package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/branchsim/internal/operation"
	"github.com/vk/branchsim/internal/registry"
)

func TestRegister(t *testing.T) {
	r := registry.New[float64]()
	(&Module{}).Register(r)

	for _, name := range []string{"add", "subtract", "multiply", "nothing"} {
		op, err := r.Operation(name)
		require.NoError(t, err, name)
		assert.NotNil(t, op, name)
	}
}

func TestOperations(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		got, err := Add(10, operation.Params{"amount": "2.5"})
		require.NoError(t, err)
		assert.Equal(t, 12.5, got)
	})

	t.Run("subtract", func(t *testing.T) {
		got, err := Subtract(10, operation.Params{"amount": "1"})
		require.NoError(t, err)
		assert.Equal(t, 9.0, got)
	})

	t.Run("multiply", func(t *testing.T) {
		got, err := Multiply(4, operation.Params{"factor": "3"})
		require.NoError(t, err)
		assert.Equal(t, 12.0, got)
	})

	t.Run("nothing ignores params", func(t *testing.T) {
		got, err := Nothing(7, nil)
		require.NoError(t, err)
		assert.Equal(t, 7.0, got)
	})

	t.Run("missing parameter fails", func(t *testing.T) {
		_, err := Add(1, operation.Params{})
		assert.ErrorContains(t, err, `missing parameter "amount"`)

		_, err = Multiply(1, operation.Params{"factor": "x"})
		assert.ErrorContains(t, err, "not a number")
	})
}
