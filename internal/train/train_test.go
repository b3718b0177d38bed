package train

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/primenet/internal/dataset"
	"github.com/born-ml/primenet/internal/matrix"
	"github.com/born-ml/primenet/internal/nn"
)

func denseWith(t *testing.T, weights [][]float32) *nn.Dense {
	t.Helper()
	w := matrix.MustFromRows(weights)
	d := nn.NewDense(w.Rows(), w.Cols(), nil)
	require.NoError(t, d.SetWeights(w))
	return d
}

func TestStepSingleDense(t *testing.T) {
	d := denseWith(t, [][]float32{{2}})
	model := nn.NewModel(d)

	loss := Step(model, matrix.RowVector(1), matrix.RowVector(0), 0.1)

	// output 2, loss 4, grad 4: w = 2 - 0.1·4, b = 0 - 0.1·4
	assert.InDelta(t, 4.0, loss, 1e-6)
	assert.InDelta(t, 1.6, d.Weights().At(0, 0), 1e-6)
	assert.InDelta(t, -0.4, d.Biases().At(0, 0), 1e-6)
}

func TestStepBackwardOrder(t *testing.T) {
	first := denseWith(t, [][]float32{{2}})
	second := denseWith(t, [][]float32{{3}})
	model := nn.NewModel(first, second)

	loss := Step(model, matrix.RowVector(1), matrix.RowVector(0), 0.01)

	// output 6, grad 12.
	// second: grad_w = 2·12 = 24, grad_in = 12·3 = 36
	// first:  grad_w = 1·36 = 36
	assert.InDelta(t, 36.0, loss, 1e-5)
	assert.InDelta(t, 3-0.24, second.Weights().At(0, 0), 1e-5)
	assert.InDelta(t, -0.12, second.Biases().At(0, 0), 1e-5)
	assert.InDelta(t, 2-0.36, first.Weights().At(0, 0), 1e-5)
	assert.InDelta(t, -0.36, first.Biases().At(0, 0), 1e-5)
}

func TestStepReturnsLossBeforeUpdate(t *testing.T) {
	model, err := nn.Build(nn.PrimeArchitecture(dataset.Bits, nn.ActivationSigmoid), rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	s := dataset.NewSample(13)

	before := nn.MSE(model.Forward(s.Input()), s.Target())
	loss := Step(model, s.Input(), s.Target(), 0.1)

	assert.InDelta(t, before, loss, 1e-7)
}

func TestStepLeavesLayersFresh(t *testing.T) {
	d := denseWith(t, [][]float32{{1}})
	model := nn.NewModel(d, nn.NewActivation(nn.ActivationSigmoid))

	Step(model, matrix.RowVector(1), matrix.RowVector(1), 0.1)

	assert.Nil(t, d.GradWeights())
	assert.Nil(t, d.GradBiases())
}

func TestStepReducesLossOnRepeatedSample(t *testing.T) {
	model, err := nn.Build(nn.PrimeArchitecture(dataset.Bits, nn.ActivationSigmoid), rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	s := dataset.NewSample(7)

	first := Step(model, s.Input(), s.Target(), 0.5)
	var last float32
	for i := 0; i < 200; i++ {
		last = Step(model, s.Input(), s.Target(), 0.5)
	}

	assert.Less(t, last, first)
}

func TestNormalizeGradient(t *testing.T) {
	input := matrix.RowVector(1)
	target := matrix.RowVector(0, 0)

	plain := denseWith(t, [][]float32{{1, 1}})
	NewTrainer(nn.NewModel(plain), Config{LearningRate: 0.1}).Step(input, target)

	normalized := denseWith(t, [][]float32{{1, 1}})
	NewTrainer(nn.NewModel(normalized), Config{LearningRate: 0.1, NormalizeGradient: true}).Step(input, target)

	// grad 2·[1 1] vs 2·[1 1]/2
	assert.True(t, matrix.RowVector(0.8, 0.8).ApproxEqual(plain.Weights(), 1e-6), "got %v", plain.Weights())
	assert.True(t, matrix.RowVector(0.9, 0.9).ApproxEqual(normalized.Weights(), 1e-6), "got %v", normalized.Weights())
}

func TestStepShapeFaultDoesNotUpdate(t *testing.T) {
	d := denseWith(t, [][]float32{{1}})
	model := nn.NewModel(d)

	assert.Panics(t, func() {
		Step(model, matrix.RowVector(1), matrix.RowVector(0, 0), 0.1)
	})
	assert.Equal(t, float32(1), d.Weights().At(0, 0))
}

func TestNewTrainerDefaults(t *testing.T) {
	cfg := NewTrainer(nn.NewModel(), Config{}).Config()
	assert.Equal(t, float32(0.1), cfg.LearningRate)
	assert.Equal(t, 20, cfg.Epochs)
	assert.Equal(t, 0, cfg.Samples)
	assert.False(t, cfg.NormalizeGradient)
}

func TestNewTrainerNegativeEpochsUsesDefault(t *testing.T) {
	model, err := nn.Build(nn.PrimeArchitecture(dataset.Bits, nn.ActivationSigmoid), rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	trainer := NewTrainer(model, Config{Epochs: -1, Samples: 4})
	assert.Equal(t, 20, trainer.Config().Epochs)

	var history []EpochStats
	require.NotPanics(t, func() {
		history = trainer.Fit(dataset.Generate(), nil)
	})
	assert.Len(t, history, 20)
}

func TestEpochRespectsSampleLimit(t *testing.T) {
	model, err := nn.Build(nn.PrimeArchitecture(dataset.Bits, nn.ActivationSigmoid), rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	trainer := NewTrainer(model, Config{Samples: 10, Epochs: 2})

	history := trainer.Fit(dataset.Generate(), nil)

	require.Len(t, history, 2)
	assert.Equal(t, 1, history[0].Epoch)
	assert.Equal(t, 2, history[1].Epoch)
	for _, s := range history {
		assert.Greater(t, s.Loss, float32(0))
		// Accuracy over 10 samples is a multiple of 0.1.
		assert.InDelta(t, float64(int(s.Accuracy*10+0.5))/10, s.Accuracy, 1e-6)
	}
}

func TestFitTrendsDownward(t *testing.T) {
	if testing.Short() {
		t.Skip("full dataset training")
	}

	model, err := nn.Build(nn.PrimeArchitecture(dataset.Bits, nn.ActivationSigmoid), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	trainer := NewTrainer(model, Config{LearningRate: 0.1, Epochs: 20})

	var seen int
	history := trainer.Fit(dataset.Generate(), func(EpochStats) { seen++ })
	require.Len(t, history, 20)
	assert.Equal(t, 20, seen)

	increases := 0
	for i := 1; i < len(history); i++ {
		if history[i].Loss > history[i-1].Loss {
			increases++
		}
	}
	assert.Less(t, increases, 15, "loss rose in %d of 19 epochs", increases)
	assert.LessOrEqual(t, history[len(history)-1].Loss, history[0].Loss)

	// Never predicting prime already scores 852/1024.
	assert.GreaterOrEqual(t, history[len(history)-1].Accuracy, float32(0.8))
}

func TestEvaluateConfusionMatrix(t *testing.T) {
	samples := dataset.Generate()
	d := nn.NewDense(dataset.Bits, 1, nil)
	model := nn.NewModel(d, nn.NewActivation(nn.ActivationSigmoid))
	model.ZeroWeights()

	require.NoError(t, d.SetBiases(matrix.RowVector(5)))
	all := Evaluate(model, samples)
	assert.Equal(t, 172, all.TruePositive)
	assert.Equal(t, 852, all.FalsePositive)
	assert.Equal(t, 0, all.TrueNegative+all.FalseNegative)
	assert.Equal(t, float32(1), all.Recall())
	assert.InDelta(t, 172.0/1024, all.Accuracy(), 1e-6)

	require.NoError(t, d.SetBiases(matrix.RowVector(-5)))
	none := Evaluate(model, samples)
	assert.Equal(t, 852, none.TrueNegative)
	assert.Equal(t, 172, none.FalseNegative)
	assert.Equal(t, float32(0), none.Precision())
	assert.Equal(t, 1024, none.Total())
	assert.Equal(t, 852, none.Correct())
}

func TestPredictThreshold(t *testing.T) {
	d := nn.NewDense(1, 1, nil)
	model := nn.NewModel(d, nn.NewActivation(nn.ActivationSigmoid))
	model.ZeroWeights()

	p, prime := Predict(model, matrix.RowVector(1))
	assert.InDelta(t, 0.5, p, 1e-6)
	assert.True(t, prime, "0.5 counts as prime")
}

func TestEmptyEvaluation(t *testing.T) {
	var e Evaluation
	assert.Equal(t, float32(0), e.Accuracy())
	assert.Equal(t, float32(0), e.Precision())
	assert.Equal(t, float32(0), e.Recall())
}
