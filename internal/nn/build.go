package nn

import (
	"fmt"
	"math/rand"
)

// LayerKind distinguishes the two layer variants in a build request.
type LayerKind int

// Layer kinds.
const (
	LayerDense LayerKind = iota
	LayerActivation
)

// LayerSpec describes one layer of a declarative build request.
type LayerSpec struct {
	Kind       LayerKind
	In, Out    int            // Dense only
	Activation ActivationKind // Activation only
}

// DenseSpec describes a Dense(in, out) layer.
func DenseSpec(in, out int) LayerSpec {
	return LayerSpec{Kind: LayerDense, In: in, Out: out}
}

// ActivationSpec describes an Activation(kind) layer.
func ActivationSpec(kind ActivationKind) LayerSpec {
	return LayerSpec{Kind: LayerActivation, Activation: kind}
}

// Build creates a model from a list of layer specs.
//
// The list must alternate Dense and Activation, starting with Dense and
// ending with Activation, and every Dense input width must equal the
// previous Dense output width. Dense weights are drawn from rng (nil for
// the global source).
//
// Returns an error wrapping ErrInvalidArchitecture otherwise.
func Build(specs []LayerSpec, rng *rand.Rand) (*Model, error) {
	if err := Validate(specs); err != nil {
		return nil, err
	}

	model := NewModel()
	for _, s := range specs {
		switch s.Kind {
		case LayerDense:
			model.Add(NewDense(s.In, s.Out, rng))
		case LayerActivation:
			model.Add(NewActivation(s.Activation))
		}
	}
	return model, nil
}

// Validate checks a build request without creating any layers.
func Validate(specs []LayerSpec) error {
	if len(specs) == 0 {
		return fmt.Errorf("no layers: %w", ErrInvalidArchitecture)
	}
	if specs[len(specs)-1].Kind != LayerActivation {
		return fmt.Errorf("last layer must be an activation: %w", ErrInvalidArchitecture)
	}

	prevOut := 0
	for i, s := range specs {
		wantKind := LayerDense
		if i%2 == 1 {
			wantKind = LayerActivation
		}
		if s.Kind != wantKind {
			return fmt.Errorf("layer %d: dense and activation layers must alternate: %w", i, ErrInvalidArchitecture)
		}

		switch s.Kind {
		case LayerDense:
			if s.In < 1 || s.Out < 1 {
				return fmt.Errorf("layer %d: invalid size %d→%d: %w", i, s.In, s.Out, ErrInvalidArchitecture)
			}
			if prevOut != 0 && s.In != prevOut {
				return fmt.Errorf("layer %d: input width %d does not match previous output %d: %w",
					i, s.In, prevOut, ErrInvalidArchitecture)
			}
			prevOut = s.Out
		case LayerActivation:
			if !s.Activation.valid() {
				return fmt.Errorf("layer %d: %v: %w", i, s.Activation, ErrUnknownActivation)
			}
		default:
			return fmt.Errorf("layer %d: unknown layer kind %d: %w", i, s.Kind, ErrInvalidArchitecture)
		}
	}
	return nil
}

// PrimeArchitecture returns the stack used for the prime classifier:
// inputs → 16 → 16 → 16 → 16 → 1, with hidden after every hidden Dense layer
// and a sigmoid on the output so predictions lie in (0, 1).
func PrimeArchitecture(inputs int, hidden ActivationKind) []LayerSpec {
	return []LayerSpec{
		DenseSpec(inputs, 16), ActivationSpec(hidden),
		DenseSpec(16, 16), ActivationSpec(hidden),
		DenseSpec(16, 16), ActivationSpec(hidden),
		DenseSpec(16, 16), ActivationSpec(hidden),
		DenseSpec(16, 1), ActivationSpec(ActivationSigmoid),
	}
}
