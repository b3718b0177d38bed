// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/primenet/internal/matrix"
	"github.com/born-ml/primenet/internal/nn"
)

// Layer is a single stage of a Model: *Dense or *Activation.
type Layer = nn.Layer

// Model is an ordered stack of layers.
type Model = nn.Model

// NewModel creates a model from the given layers.
func NewModel(layers ...Layer) *Model {
	return nn.NewModel(layers...)
}

// Layers

// Dense represents a fully connected layer.
type Dense = nn.Dense

// NewDense creates a Dense layer with weights uniform in [-1, 1) and zero biases.
//
// Example:
//
//	layer := nn.NewDense(10, 16, rand.New(rand.NewSource(1)))
func NewDense(inFeatures, outFeatures int, rng *rand.Rand) *Dense {
	return nn.NewDense(inFeatures, outFeatures, rng)
}

// Activation represents an elementwise nonlinearity layer.
type Activation = nn.Activation

// ActivationKind enumerates the supported nonlinearities.
type ActivationKind = nn.ActivationKind

// Activation kinds.
const (
	ActivationSigmoid   = nn.ActivationSigmoid
	ActivationReLU      = nn.ActivationReLU
	ActivationLeakyReLU = nn.ActivationLeakyReLU
)

// NewActivation creates an Activation layer.
//
// Example:
//
//	act := nn.NewActivation(nn.ActivationSigmoid)
func NewActivation(kind ActivationKind) *Activation {
	return nn.NewActivation(kind)
}

// ParseActivation maps a name such as "relu" to its kind.
func ParseActivation(name string) (ActivationKind, error) {
	return nn.ParseActivation(name)
}

// Building

// LayerSpec describes one layer of a build request.
type LayerSpec = nn.LayerSpec

// DenseSpec describes a Dense(in, out) layer.
func DenseSpec(in, out int) LayerSpec {
	return nn.DenseSpec(in, out)
}

// ActivationSpec describes an Activation(kind) layer.
func ActivationSpec(kind ActivationKind) LayerSpec {
	return nn.ActivationSpec(kind)
}

// Build creates a model from alternating Dense/Activation specs.
func Build(specs []LayerSpec, rng *rand.Rand) (*Model, error) {
	return nn.Build(specs, rng)
}

// PrimeArchitecture returns the prime classifier stack.
func PrimeArchitecture(inputs int, hidden ActivationKind) []LayerSpec {
	return nn.PrimeArchitecture(inputs, hidden)
}

// Loss functions

// MSE computes mean((predictions - targets)²).
func MSE(predictions, targets *matrix.Matrix) float32 {
	return nn.MSE(predictions, targets)
}

// MSEGrad returns 2·(predictions - targets).
func MSEGrad(predictions, targets *matrix.Matrix) *matrix.Matrix {
	return nn.MSEGrad(predictions, targets)
}

// Errors

// Errors reported by layers and models.
var (
	ErrMissingCache        = nn.ErrMissingCache
	ErrLayerIndex          = nn.ErrLayerIndex
	ErrNoParameters        = nn.ErrNoParameters
	ErrWeightIndex         = nn.ErrWeightIndex
	ErrInvalidArchitecture = nn.ErrInvalidArchitecture
	ErrUnknownActivation   = nn.ErrUnknownActivation
)
