package vecmath

import (
	"errors"
	"math"
)

var ErrDimensionMismatch = errors.New("vecmath: dimension mismatch")

// Cosine returns the cosine similarity of two vectors in [-1, 1].
// Zero-norm inputs yield 0 (no direction to compare). Length mismatch or
// empty inputs are an error rather than a silent 0: the caller decides
// whether that record is excluded or the request fails.
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) || len(a) == 0 {
		return 0, ErrDimensionMismatch
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// Rounding can push |sim| a hair past 1 for near-parallel vectors.
	return math.Max(-1, math.Min(1, sim)), nil
}
