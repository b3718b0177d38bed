// Package train drives gradient descent on an nn.Model.
//
// A training step is synchronous and not cancellable. Shape or cache faults
// panic mid-step; updates already applied to earlier layers are not rolled
// back, so a model that faulted must be discarded.
package train

import (
	"github.com/born-ml/primenet/internal/matrix"
	"github.com/born-ml/primenet/internal/nn"
)

// Step performs one gradient descent step on a single (input, target) pair
// and returns the MSE loss measured before the update.
//
// The output gradient is 2·(output - target), not divided by the number of
// output elements.
func Step(model *nn.Model, input, target *matrix.Matrix, learningRate float32) float32 {
	return step(model, input, target, learningRate, false)
}

func step(model *nn.Model, input, target *matrix.Matrix, learningRate float32, normalize bool) float32 {
	layers := model.Layers()

	// Forward sweep, recording the matrix fed into each layer.
	inputs := make([]*matrix.Matrix, len(layers))
	x := input
	for i, layer := range layers {
		inputs[i] = x
		x = layer.Forward(x)
	}

	loss := nn.MSE(x, target)

	grad := nn.MSEGrad(x, target)
	if normalize {
		grad = grad.Scale(1 / float32(grad.Len()))
	}

	// Backward sweep in exact reverse order.
	for i := len(layers) - 1; i >= 0; i-- {
		grad = layers[i].Backward(inputs[i], grad)
	}

	for _, layer := range layers {
		layer.Update(learningRate)
	}

	return loss
}
