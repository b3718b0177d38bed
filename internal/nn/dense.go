package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/primenet/internal/matrix"
)

// Dense implements a fully connected layer.
//
// Performs the transformation: y = x · W + b
// where:
//   - x is the input with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias row with shape [1, out_features], broadcast to every row
//   - y is the output with shape [batch_size, out_features]
//
// Weights are initialized uniformly in [-1, 1). Biases are initialized to zeros.
//
// Example:
//
//	layer := nn.NewDense(10, 16, rand.New(rand.NewSource(1)))
//	output := layer.Forward(matrix.RowVector(features...))  // shape: [1, 16]
type Dense struct {
	inFeatures  int
	outFeatures int
	weights     *matrix.Matrix // [in_features, out_features]
	biases      *matrix.Matrix // [1, out_features]

	// Scratch state for one forward → backward → update cycle.
	lastInput   *matrix.Matrix
	gradWeights *matrix.Matrix
	gradBiases  *matrix.Matrix
}

// NewDense creates a new Dense layer.
//
// Parameters:
//   - inFeatures: Number of input features
//   - outFeatures: Number of output features
//   - rng: Random source for weight initialization, nil for the global source
//
// Returns a new Dense layer.
func NewDense(inFeatures, outFeatures int, rng *rand.Rand) *Dense {
	return &Dense{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weights:     Uniform(inFeatures, outFeatures, rng),
		biases:      Zeros(1, outFeatures),
	}
}

// Forward computes input · W + b and caches the input.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
func (d *Dense) Forward(input *matrix.Matrix) *matrix.Matrix {
	if input.Cols() != d.inFeatures {
		panic(fmt.Sprintf("Dense.Forward: expected input with %d features, got %d", d.inFeatures, input.Cols()))
	}

	bias := d.biases.Row(0)
	output := input.Dot(d.weights).MapRows(func(row []float32) []float32 {
		for j := range row {
			row[j] += bias[j]
		}
		return row
	})

	d.lastInput = input
	return output
}

// Backward computes the parameter gradients and the gradient for the
// previous layer.
//
//	grad_weights = inputᵀ · grad_output
//	grad_biases  = sumRows(grad_output)
//	grad_input   = grad_output · Wᵀ
//
// Panics if Forward has not been called since the last Update, or if the
// input or gradient width does not match the layer.
func (d *Dense) Backward(input, gradOutput *matrix.Matrix) *matrix.Matrix {
	if d.lastInput == nil {
		cacheFault("Dense.Backward")
	}
	if input.Cols() != d.inFeatures {
		panic(fmt.Sprintf("Dense.Backward: expected input with %d features, got %d", d.inFeatures, input.Cols()))
	}
	if gradOutput.Cols() != d.outFeatures {
		panic(fmt.Sprintf("Dense.Backward: expected gradient with %d features, got %d", d.outFeatures, gradOutput.Cols()))
	}

	d.gradWeights = input.Transpose().Dot(gradOutput)
	d.gradBiases = gradOutput.SumRows()

	return gradOutput.Dot(d.weights.Transpose())
}

// Update applies plain gradient descent and clears the caches:
//
//	W ← W + (-lr)·grad_weights
//	b ← b + (-lr)·grad_biases
//
// Panics if Backward has not been called since the last Update.
func (d *Dense) Update(learningRate float32) {
	if d.gradWeights == nil || d.gradBiases == nil {
		cacheFault("Dense.Update")
	}

	d.weights = d.weights.Add(d.gradWeights.Scale(-learningRate))
	d.biases = d.biases.Add(d.gradBiases.Scale(-learningRate))

	d.lastInput = nil
	d.gradWeights = nil
	d.gradBiases = nil
}

// Name returns "Dense(in→out)".
func (d *Dense) Name() string {
	return fmt.Sprintf("Dense(%d→%d)", d.inFeatures, d.outFeatures)
}

func (d *Dense) sealed() {}

// InFeatures returns the number of input features.
func (d *Dense) InFeatures() int {
	return d.inFeatures
}

// OutFeatures returns the number of output features.
func (d *Dense) OutFeatures() int {
	return d.outFeatures
}

// Weights returns the weight matrix. The caller must not mutate it.
func (d *Dense) Weights() *matrix.Matrix {
	return d.weights
}

// Biases returns the bias row. The caller must not mutate it.
func (d *Dense) Biases() *matrix.Matrix {
	return d.biases
}

// GradWeights returns the weight gradient from the last Backward call,
// or nil if there is none pending.
func (d *Dense) GradWeights() *matrix.Matrix {
	return d.gradWeights
}

// GradBiases returns the bias gradient from the last Backward call,
// or nil if there is none pending.
func (d *Dense) GradBiases() *matrix.Matrix {
	return d.gradBiases
}

// NumParameters returns the number of trainable values.
func (d *Dense) NumParameters() int {
	return d.weights.Len() + d.biases.Len()
}

// SetWeights replaces the weight matrix with a copy of w.
func (d *Dense) SetWeights(w *matrix.Matrix) error {
	if w.Rows() != d.inFeatures || w.Cols() != d.outFeatures {
		return fmt.Errorf("weights: expected %dx%d, got %dx%d: %w",
			d.inFeatures, d.outFeatures, w.Rows(), w.Cols(), ErrParameterShapeChange)
	}
	d.weights = w.Clone()
	return nil
}

// SetBiases replaces the bias row with a copy of b.
func (d *Dense) SetBiases(b *matrix.Matrix) error {
	if b.Rows() != 1 || b.Cols() != d.outFeatures {
		return fmt.Errorf("biases: expected 1x%d, got %dx%d: %w",
			d.outFeatures, b.Rows(), b.Cols(), ErrParameterShapeChange)
	}
	d.biases = b.Clone()
	return nil
}

func (d *Dense) randomize(rng *rand.Rand) {
	d.weights = Uniform(d.inFeatures, d.outFeatures, rng)
}

func (d *Dense) zero() {
	d.weights = Zeros(d.inFeatures, d.outFeatures)
}
