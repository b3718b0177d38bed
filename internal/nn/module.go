// Package nn implements the layers and model of the primenet engine.
//
// This package provides:
//   - Layer: closed set of layer variants (Dense, Activation)
//   - Dense: fully connected layer with manual backward pass
//   - Activation: elementwise nonlinearity (Sigmoid, ReLU, LeakyReLU)
//   - Model: ordered stack of layers with administrative weight access
//   - Loss functions: MSE and its gradient
//
// Every layer follows the same per-instance cycle:
//
//	out := layer.Forward(in)                // caches what Backward needs
//	gradIn := layer.Backward(in, gradOut)   // caches parameter gradients
//	layer.Update(lr)                        // consumes gradients, clears caches
//
// Calling Backward before Forward, or Update before Backward on a Dense
// layer, is a programmer error and panics with an error wrapping
// ErrMissingCache.
package nn

import (
	"errors"
	"fmt"

	"github.com/born-ml/primenet/internal/matrix"
)

// Common errors.
var (
	ErrMissingCache         = errors.New("missing cached state from previous pass")
	ErrLayerIndex           = errors.New("layer index out of range")
	ErrNoParameters         = errors.New("target layer has no parameters")
	ErrWeightIndex          = errors.New("weight index out of range")
	ErrInvalidArchitecture  = errors.New("invalid architecture")
	ErrUnknownActivation    = errors.New("unknown activation")
	ErrParameterShapeChange = errors.New("parameter shape mismatch")
)

// Layer is a single stage of a Model.
//
// The set of implementations is closed: *Dense and *Activation. Code that
// needs to distinguish them uses an exhaustive type switch.
type Layer interface {
	// Forward computes the layer output and caches what Backward needs.
	Forward(input *matrix.Matrix) *matrix.Matrix

	// Backward takes the matrix that was fed into Forward and the gradient
	// of the loss with respect to the layer output. It returns the gradient
	// with respect to the layer input.
	Backward(input, gradOutput *matrix.Matrix) *matrix.Matrix

	// Update applies the gradients computed by the last Backward call.
	Update(learningRate float32)

	// Name returns a short human-readable description, e.g. "Dense(10→16)".
	Name() string

	sealed()
}

func cacheFault(op string) {
	panic(fmt.Errorf("%s: %w", op, ErrMissingCache))
}
