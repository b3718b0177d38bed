// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train provides gradient descent training for primenet models.
//
// Example usage:
//
//	trainer := train.NewTrainer(model, train.Config{LearningRate: 0.1, Epochs: 20})
//	for _, s := range trainer.Fit(dataset.Generate(), nil) {
//	    fmt.Printf("epoch %d loss %.6f acc %.2f%%\n", s.Epoch, s.Loss, s.Accuracy*100)
//	}
package train

import (
	"github.com/born-ml/primenet/internal/dataset"
	"github.com/born-ml/primenet/internal/matrix"
	"github.com/born-ml/primenet/internal/nn"
	"github.com/born-ml/primenet/internal/train"
)

// Threshold is the prediction cut-off for "prime".
const Threshold = train.Threshold

// Config holds configuration for a Trainer.
type Config = train.Config

// EpochStats summarizes one epoch.
type EpochStats = train.EpochStats

// Evaluation is a binary confusion matrix.
type Evaluation = train.Evaluation

// Trainer runs training epochs on a model.
type Trainer = train.Trainer

// NewTrainer creates a trainer with defaults for zero config fields.
func NewTrainer(model *nn.Model, cfg Config) *Trainer {
	return train.NewTrainer(model, cfg)
}

// Step performs one gradient descent step and returns the loss.
func Step(model *nn.Model, input, target *matrix.Matrix, learningRate float32) float32 {
	return train.Step(model, input, target, learningRate)
}

// Evaluate tallies the confusion matrix of model over samples.
func Evaluate(model *nn.Model, samples []dataset.Sample) Evaluation {
	return train.Evaluate(model, samples)
}

// Predict returns the model output and whether it reaches Threshold.
func Predict(model *nn.Model, input *matrix.Matrix) (float32, bool) {
	return train.Predict(model, input)
}
