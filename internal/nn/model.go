package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/primenet/internal/matrix"
)

// Model is an ordered stack of layers.
//
// Forward runs layers in index order 0→N-1. Training code drives the
// backward pass in the exact reverse order; see package train.
//
// A Model is not safe for concurrent use. Its layers hold per-pass caches,
// so even Forward mutates state and callers must serialize access.
//
// Example:
//
//	model := nn.NewModel(
//	    nn.NewDense(10, 16, rng),
//	    nn.NewActivation(nn.ActivationSigmoid),
//	    nn.NewDense(16, 1, rng),
//	    nn.NewActivation(nn.ActivationSigmoid),
//	)
//	output := model.Forward(input)
type Model struct {
	layers []Layer
}

// NewModel creates a model from the given layers.
func NewModel(layers ...Layer) *Model {
	return &Model{layers: layers}
}

// Add appends a layer to the model.
func (m *Model) Add(layer Layer) {
	m.layers = append(m.layers, layer)
}

// Len returns the number of layers.
func (m *Model) Len() int {
	return len(m.layers)
}

// Layer returns the layer at index.
//
// Panics if index is out of bounds.
func (m *Model) Layer(index int) Layer {
	if index < 0 || index >= len(m.layers) {
		panic("Model.Layer: index out of bounds")
	}
	return m.layers[index]
}

// Layers returns the layers in forward order.
//
// The returned slice is a copy; the layers themselves are shared.
func (m *Model) Layers() []Layer {
	out := make([]Layer, len(m.layers))
	copy(out, m.layers)
	return out
}

// Forward applies all layers in sequence.
func (m *Model) Forward(input *matrix.Matrix) *matrix.Matrix {
	output := input
	for _, layer := range m.layers {
		output = layer.Forward(output)
	}
	return output
}

// ForwardTrace runs the forward pass and returns every intermediate value:
// element 0 is the input and element i+1 is the output of layer i.
//
// Intended for diagnostics only.
func (m *Model) ForwardTrace(input *matrix.Matrix) []*matrix.Matrix {
	trace := make([]*matrix.Matrix, 0, len(m.layers)+1)
	trace = append(trace, input)

	output := input
	for _, layer := range m.layers {
		output = layer.Forward(output)
		trace = append(trace, output)
	}
	return trace
}

// Weight returns a single weight of a Dense layer.
//
// Returns ErrLayerIndex, ErrNoParameters or ErrWeightIndex when the address
// does not name an existing Dense weight.
func (m *Model) Weight(layerIndex, row, col int) (float32, error) {
	d, err := m.denseWeightAt(layerIndex, row, col)
	if err != nil {
		return 0, err
	}
	return d.weights.At(row, col), nil
}

// SetWeight overwrites a single weight of a Dense layer.
//
// Returns the same errors as Weight.
func (m *Model) SetWeight(layerIndex, row, col int, value float32) error {
	d, err := m.denseWeightAt(layerIndex, row, col)
	if err != nil {
		return err
	}
	d.weights.Set(row, col, value)
	return nil
}

// RandomizeWeights redraws every Dense weight uniformly from [-1, 1).
// Biases are left unchanged.
func (m *Model) RandomizeWeights(rng *rand.Rand) {
	for _, d := range m.denseLayers() {
		d.randomize(rng)
	}
}

// ZeroWeights sets every Dense weight to zero. Biases are left unchanged.
func (m *Model) ZeroWeights() {
	for _, d := range m.denseLayers() {
		d.zero()
	}
}

// NumParameters returns the total number of trainable values.
func (m *Model) NumParameters() int {
	n := 0
	for _, d := range m.denseLayers() {
		n += d.NumParameters()
	}
	return n
}

// Summary returns one descriptive line per layer.
func (m *Model) Summary() []string {
	lines := make([]string, 0, len(m.layers))
	for i, layer := range m.layers {
		switch l := layer.(type) {
		case *Dense:
			lines = append(lines, fmt.Sprintf("%2d  %-22s %5d params", i, l.Name(), l.NumParameters()))
		case *Activation:
			lines = append(lines, fmt.Sprintf("%2d  %-22s     - params", i, l.Name()))
		}
	}
	return lines
}

func (m *Model) denseLayers() []*Dense {
	var out []*Dense
	for _, layer := range m.layers {
		if d, ok := layer.(*Dense); ok {
			out = append(out, d)
		}
	}
	return out
}

func (m *Model) denseWeightAt(layerIndex, row, col int) (*Dense, error) {
	if layerIndex < 0 || layerIndex >= len(m.layers) {
		return nil, fmt.Errorf("layer %d of %d: %w", layerIndex, len(m.layers), ErrLayerIndex)
	}

	var d *Dense
	switch l := m.layers[layerIndex].(type) {
	case *Dense:
		d = l
	case *Activation:
		return nil, fmt.Errorf("layer %d is %s: %w", layerIndex, l.Name(), ErrNoParameters)
	}

	if row < 0 || row >= d.inFeatures || col < 0 || col >= d.outFeatures {
		return nil, fmt.Errorf("(%d, %d) in %dx%d weights of layer %d: %w",
			row, col, d.inFeatures, d.outFeatures, layerIndex, ErrWeightIndex)
	}
	return d, nil
}
