package operation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parameteredAdd(state float64, params Params) (float64, error) {
	amount, err := params.Float("amount")
	if err != nil {
		return 0, err
	}
	return state + amount, nil
}

func TestBind(t *testing.T) {
	t.Run("bound operation applies captured params", func(t *testing.T) {
		bound := Bind(parameteredAdd, Params{"amount": "2"})

		state, err := bound(0)
		require.NoError(t, err)
		state, err = bound(state)
		require.NoError(t, err)
		assert.Equal(t, 4.0, state)
	})

	t.Run("bound equals direct invocation", func(t *testing.T) {
		params := Params{"amount": "3.5"}
		bound := Bind(parameteredAdd, params)

		for _, x := range []float64{-1, 0, 10, 2.25} {
			want, err := parameteredAdd(x, params)
			require.NoError(t, err)
			got, err := bound(x)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("params are captured by value", func(t *testing.T) {
		params := Params{"amount": "2"}
		bound := Bind(parameteredAdd, params)

		// Mutating the original map after binding must not leak through.
		params["amount"] = "100"
		got, err := bound(1)
		require.NoError(t, err)
		assert.Equal(t, 3.0, got)
	})

	t.Run("operation failures propagate", func(t *testing.T) {
		bound := Bind(parameteredAdd, Params{})
		_, err := bound(1)
		require.Error(t, err)
		assert.ErrorContains(t, err, `missing parameter "amount"`)
	})
}

func TestIdentity(t *testing.T) {
	got, err := Identity(42)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestParamsAccessors(t *testing.T) {
	params := Params{"rate": "1.5", "count": "3", "label": "x"}

	t.Run("float", func(t *testing.T) {
		v, err := params.Float("rate")
		require.NoError(t, err)
		assert.Equal(t, 1.5, v)

		_, err = params.Float("label")
		assert.ErrorContains(t, err, "not a number")

		_, err = params.Float("absent")
		assert.ErrorContains(t, err, "missing parameter")
	})

	t.Run("int", func(t *testing.T) {
		v, err := params.Int("count")
		require.NoError(t, err)
		assert.Equal(t, 3, v)

		_, err = params.Int("rate")
		assert.ErrorContains(t, err, "not an integer")
	})

	t.Run("clone is independent", func(t *testing.T) {
		clone := params.Clone()
		clone["rate"] = "9"
		assert.Equal(t, "1.5", params["rate"])
	})
}
