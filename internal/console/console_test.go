package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/primenet/internal/nn"
)

func run(t *testing.T, script string) (*Session, string) {
	t.Helper()
	var out bytes.Buffer
	s, err := NewSession(strings.NewReader(script), &out, Config{Seed: 1})
	require.NoError(t, err)
	require.NoError(t, s.Run())
	return s, out.String()
}

func TestQuit(t *testing.T) {
	_, out := run(t, "8\n")
	assert.Contains(t, out, "Prime Classifier")
	assert.Contains(t, out, "Bye")
}

func TestEOFEndsSession(t *testing.T) {
	_, out := run(t, "")
	assert.Contains(t, out, "Choose an option")
}

func TestInvalidOption(t *testing.T) {
	_, out := run(t, "x\n8\n")
	assert.Contains(t, out, "Invalid option")
}

func TestInfer(t *testing.T) {
	_, out := run(t, "2\n5\n1024\nq\n8\n")

	assert.Contains(t, out, "Binary Input: [0 0 0 0 0 0 0 1 0 1]")
	assert.Contains(t, out, "Input Projection")
	assert.Contains(t, out, "Hidden Layer 1")
	assert.Contains(t, out, "Activation 4")
	assert.Contains(t, out, "Output Projection")
	assert.Contains(t, out, "Output Activation")
	assert.Contains(t, out, "Actual: Prime")
	assert.Contains(t, out, "Please enter a valid number")
}

func TestTrain(t *testing.T) {
	_, out := run(t, "1\n16\n2\n8\n")

	assert.Contains(t, out, "Epoch   1")
	assert.Contains(t, out, "Epoch   2")
	assert.Contains(t, out, "Training complete")
}

func TestTrainRejectsBadCount(t *testing.T) {
	_, out := run(t, "1\n0\n1\n2000\n8\n")
	assert.Equal(t, 2, strings.Count(out, "Invalid sample count"))
}

func TestEvaluate(t *testing.T) {
	_, out := run(t, "3\n8\n")
	assert.Contains(t, out, "Evaluation over 1024 samples")
	assert.Contains(t, out, "Accuracy:")
	assert.Contains(t, out, "predicted prime")
}

func TestEditWeight(t *testing.T) {
	s, out := run(t, "5\n0 1 2 0.5\n8\n")

	assert.Contains(t, out, "Weight [0][1][2]")
	w, err := s.Model().Weight(0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), w)
}

func TestEditWeightErrors(t *testing.T) {
	_, out := run(t, "5\n1 0 0 1\n5\n0 99 0 1\n5\n42 0 0 1\n5\n1 2\n8\n")

	assert.Contains(t, out, nn.ErrNoParameters.Error())
	assert.Contains(t, out, nn.ErrWeightIndex.Error())
	assert.Contains(t, out, nn.ErrLayerIndex.Error())
	assert.Contains(t, out, "Expected 4 values")
}

func TestZeroAndShowWeights(t *testing.T) {
	s, out := run(t, "7\n4\n8\n")

	assert.Contains(t, out, "Weights zeroed")
	assert.Contains(t, out, "Dense Layer 0 Weights")
	assert.Contains(t, out, "Activation Layer 1 (sigmoid, no weights)")

	w, err := s.Model().Weight(8, 15, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(0), w)
}

func TestRandomizeWeights(t *testing.T) {
	s, out := run(t, "7\n6\n8\n")
	assert.Contains(t, out, "Weights randomized")

	nonZero := false
	for row := 0; row < 10; row++ {
		w, err := s.Model().Weight(0, row, 0)
		require.NoError(t, err)
		nonZero = nonZero || w != 0
	}
	assert.True(t, nonZero)
}

func TestLayerLabels(t *testing.T) {
	model, err := nn.Build(nn.PrimeArchitecture(10, nn.ActivationSigmoid), nil)
	require.NoError(t, err)

	want := []string{
		"Input Projection", "Activation 1",
		"Hidden Layer 1", "Activation 2",
		"Hidden Layer 2", "Activation 3",
		"Hidden Layer 3", "Activation 4",
		"Output Projection", "Output Activation",
	}
	for i, w := range want {
		assert.Equal(t, w, layerLabel(model, i))
	}
}
