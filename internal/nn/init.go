package nn

import (
	"math/rand"

	"github.com/born-ml/primenet/internal/matrix"
)

// Uniform creates a rows×cols matrix with values drawn uniformly from [-1, 1).
//
// If rng is nil the global math/rand source is used, which is seeded
// randomly at program start and therefore not reproducible.
//
// Parameters:
//   - rows, cols: Shape of the matrix
//   - rng: Random source, or nil
//
// Returns the initialized matrix.
func Uniform(rows, cols int, rng *rand.Rand) *matrix.Matrix {
	m := matrix.New(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, uniform(rng))
		}
	}
	return m
}

// Zeros creates a zero-filled rows×cols matrix.
//
// This is used for bias initialization.
func Zeros(rows, cols int) *matrix.Matrix {
	return matrix.New(rows, cols)
}

func uniform(rng *rand.Rand) float32 {
	if rng == nil {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		return rand.Float32()*2 - 1
	}
	return rng.Float32()*2 - 1
}
