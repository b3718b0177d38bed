package train

import (
	"github.com/born-ml/primenet/internal/dataset"
	"github.com/born-ml/primenet/internal/matrix"
	"github.com/born-ml/primenet/internal/nn"
)

// Threshold is the prediction cut-off: outputs ≥ Threshold mean "prime".
const Threshold float32 = 0.5

// Config holds configuration for a Trainer.
type Config struct {
	LearningRate float32 // Step size (default: 0.1 when 0)
	Epochs       int     // Passes over the samples in Fit (default: 20 when ≤ 0)
	Samples      int     // Use only the first Samples samples (default: 0 = all)

	// NormalizeGradient divides the output gradient by the number of output
	// elements so it matches the averaged loss. Off by default.
	NormalizeGradient bool
}

// EpochStats summarizes one pass over the training samples.
type EpochStats struct {
	Epoch    int     // 1-based
	Loss     float32 // mean step loss over the epoch
	Accuracy float32 // fraction correct after the epoch, in [0, 1]
}

// Trainer runs training epochs on a model it exclusively owns for the
// duration of each call.
//
// Example:
//
//	trainer := train.NewTrainer(model, train.Config{LearningRate: 0.1, Epochs: 20})
//	history := trainer.Fit(dataset.Generate(), func(s train.EpochStats) {
//	    fmt.Printf("Epoch %d: loss=%.6f\n", s.Epoch, s.Loss)
//	})
type Trainer struct {
	model *nn.Model
	cfg   Config
	epoch int
}

// NewTrainer creates a trainer, filling unset config fields with defaults.
// A zero LearningRate means 0.1, and a non-positive Epochs means 20.
func NewTrainer(model *nn.Model, cfg Config) *Trainer {
	if cfg.LearningRate == 0 {
		cfg.LearningRate = 0.1
	}
	if cfg.Epochs <= 0 {
		cfg.Epochs = 20
	}
	return &Trainer{model: model, cfg: cfg}
}

// Config returns the effective configuration.
func (t *Trainer) Config() Config {
	return t.cfg
}

// Model returns the model being trained.
func (t *Trainer) Model() *nn.Model {
	return t.model
}

// Step performs one training step with the trainer's configuration.
func (t *Trainer) Step(input, target *matrix.Matrix) float32 {
	return step(t.model, input, target, t.cfg.LearningRate, t.cfg.NormalizeGradient)
}

// Epoch runs Step over the samples in order, then measures accuracy on the
// same samples.
func (t *Trainer) Epoch(samples []dataset.Sample) EpochStats {
	samples = t.limit(samples)
	t.epoch++

	stats := EpochStats{Epoch: t.epoch}
	if len(samples) == 0 {
		return stats
	}

	var total float32
	for _, s := range samples {
		total += t.Step(s.Input(), s.Target())
	}
	stats.Loss = total / float32(len(samples))
	stats.Accuracy = Evaluate(t.model, samples).Accuracy()

	return stats
}

// Fit runs the configured number of epochs and returns their statistics.
// onEpoch, if non-nil, is called after every epoch.
func (t *Trainer) Fit(samples []dataset.Sample, onEpoch func(EpochStats)) []EpochStats {
	history := make([]EpochStats, 0, t.cfg.Epochs)
	for i := 0; i < t.cfg.Epochs; i++ {
		stats := t.Epoch(samples)
		history = append(history, stats)
		if onEpoch != nil {
			onEpoch(stats)
		}
	}
	return history
}

func (t *Trainer) limit(samples []dataset.Sample) []dataset.Sample {
	if t.cfg.Samples > 0 && t.cfg.Samples < len(samples) {
		return samples[:t.cfg.Samples]
	}
	return samples
}
