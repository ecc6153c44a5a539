package vecmath_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelmatch/internal/vecmath"
)

func TestCosine_Identical(t *testing.T) {
	v := []float64{0.3, -1.2, 4.5}
	got, err := vecmath.Cosine(v, v)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)
}

func TestCosine_Opposite(t *testing.T) {
	got, err := vecmath.Cosine([]float64{1, 2, 3}, []float64{-1, -2, -3})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, got, 1e-12)
}

func TestCosine_Orthogonal(t *testing.T) {
	got, err := vecmath.Cosine([]float64{1, 0}, []float64{0, 1})
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCosine_ZeroVector(t *testing.T) {
	got, err := vecmath.Cosine([]float64{0, 0}, []float64{1, 2})
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCosine_DimensionMismatch(t *testing.T) {
	_, err := vecmath.Cosine([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, vecmath.ErrDimensionMismatch)

	_, err = vecmath.Cosine(nil, nil)
	assert.ErrorIs(t, err, vecmath.ErrDimensionMismatch)
}

func TestCosine_AlwaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		a := make([]float64, 16)
		b := make([]float64, 16)
		for j := range a {
			a[j] = rng.NormFloat64() * 100
			b[j] = rng.NormFloat64() * 100
		}
		got, err := vecmath.Cosine(a, b)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, -1.0)
		assert.LessOrEqual(t, got, 1.0)
	}
}
