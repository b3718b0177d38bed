// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the layers and model of the primenet engine.
//
// # Overview
//
// This package contains:
//   - Layers: Dense, Activation (a closed set of two variants)
//   - Activations: Sigmoid, ReLU, LeakyReLU
//   - Loss functions: MSE and its gradient
//   - Model: ordered layer stack with weight access by index
//   - Build: declarative construction from layer specs
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/primenet/matrix"
//	    "github.com/born-ml/primenet/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(1))
//	    model, err := nn.Build(nn.PrimeArchitecture(10, nn.ActivationSigmoid), rng)
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    output := model.Forward(matrix.RowVector(0, 0, 0, 0, 0, 0, 0, 1, 0, 1))
//	}
//
// # Layer cycle
//
// Each layer caches what its backward pass needs:
//
//	out := layer.Forward(in)
//	gradIn := layer.Backward(in, gradOut)
//	layer.Update(lr)
//
// Backward before Forward, or Update before Backward on a Dense layer,
// panics with an error wrapping ErrMissingCache.
//
// # Weight access
//
// Model.Weight and Model.SetWeight address a single Dense weight by
// (layer, row, col) and report ErrLayerIndex, ErrNoParameters or
// ErrWeightIndex instead of silently ignoring bad addresses.
package nn
