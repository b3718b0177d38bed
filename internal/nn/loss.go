package nn

import (
	"fmt"

	"github.com/born-ml/primenet/internal/matrix"
)

// MSE computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²) over every element.
//
// Panics if predictions and targets differ in shape.
func MSE(predictions, targets *matrix.Matrix) float32 {
	if !predictions.SameShape(targets) {
		panic(fmt.Sprintf("MSE: predictions %dx%d and targets %dx%d must have the same shape",
			predictions.Rows(), predictions.Cols(), targets.Rows(), targets.Cols()))
	}

	diff := predictions.Sub(targets)
	return diff.Hadamard(diff).Sum() / float32(diff.Len())
}

// MSEGrad returns 2·(predictions - targets).
//
// The result is not divided by the element count; see Step in package
// train for the optional normalization.
func MSEGrad(predictions, targets *matrix.Matrix) *matrix.Matrix {
	return predictions.Sub(targets).Scale(2)
}
