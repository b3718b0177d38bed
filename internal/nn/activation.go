package nn

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"github.com/born-ml/primenet/internal/matrix"
)

// ActivationKind enumerates the supported elementwise nonlinearities.
type ActivationKind int

// Supported activation kinds.
const (
	ActivationSigmoid ActivationKind = iota
	ActivationReLU
	ActivationLeakyReLU
)

// LeakySlope is the slope of LeakyReLU for non-positive inputs.
const LeakySlope float32 = 0.01

type activationFuncs struct {
	name string
	fn   func(x float32) float32
	// derivative is expressed in terms of the activation output y.
	derivative func(y float32) float32
}

var activations = [...]activationFuncs{
	ActivationSigmoid:   {name: "sigmoid", fn: Sigmoid, derivative: SigmoidDerivative},
	ActivationReLU:      {name: "relu", fn: ReLU, derivative: ReLUDerivative},
	ActivationLeakyReLU: {name: "leaky_relu", fn: LeakyReLU, derivative: LeakyReLUDerivative},
}

// String returns the lowercase name of the activation.
func (k ActivationKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("ActivationKind(%d)", int(k))
	}
	return activations[k].name
}

func (k ActivationKind) valid() bool {
	return k >= 0 && int(k) < len(activations)
}

// ParseActivation maps a name ("sigmoid", "relu", "leaky_relu") to its kind.
// Matching is case-insensitive and accepts "leakyrelu" and "leaky-relu".
func ParseActivation(name string) (ActivationKind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("-", "_").Replace(normalized)
	if normalized == "leakyrelu" {
		normalized = "leaky_relu"
	}
	for k, a := range activations {
		if a.name == normalized {
			return ActivationKind(k), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownActivation)
}

// Sigmoid computes σ(x) = 1 / (1 + exp(-x)).
func Sigmoid(x float32) float32 {
	return 1 / (1 + math32.Exp(-x))
}

// SigmoidDerivative computes σ'(x) from the output y = σ(x): y·(1-y).
func SigmoidDerivative(y float32) float32 {
	return y * (1 - y)
}

// ReLU computes max(x, 0).
func ReLU(x float32) float32 {
	if x > 0 {
		return x
	}
	return 0
}

// ReLUDerivative is 1 for positive activations, else 0.
//
// ReLU output is positive exactly when its input is, so the output
// determines the derivative.
func ReLUDerivative(y float32) float32 {
	if y > 0 {
		return 1
	}
	return 0
}

// LeakyReLU computes x for x > 0, else LeakySlope·x.
func LeakyReLU(x float32) float32 {
	if x > 0 {
		return x
	}
	return LeakySlope * x
}

// LeakyReLUDerivative is 1 for positive activations, else LeakySlope.
func LeakyReLUDerivative(y float32) float32 {
	if y > 0 {
		return 1
	}
	return LeakySlope
}

// Activation is an elementwise nonlinearity layer.
//
// It has no trainable parameters. Forward caches its output because the
// derivative of every supported kind is computed from the output.
//
// Example:
//
//	act := nn.NewActivation(nn.ActivationSigmoid)
//	output := act.Forward(input)  // Values in range (0, 1)
type Activation struct {
	kind       ActivationKind
	lastOutput *matrix.Matrix
}

// NewActivation creates a new Activation layer.
//
// Panics if kind is not one of the declared ActivationKind constants.
func NewActivation(kind ActivationKind) *Activation {
	if !kind.valid() {
		panic(fmt.Sprintf("NewActivation: %v", kind))
	}
	return &Activation{kind: kind}
}

// Forward applies the activation elementwise and caches the output.
func (a *Activation) Forward(input *matrix.Matrix) *matrix.Matrix {
	output := input.Map(activations[a.kind].fn)
	a.lastOutput = output
	return output
}

// Backward returns gradOutput ⊙ derivative(lastOutput).
//
// The input argument is not needed and is ignored.
// Panics if Forward has not been called since the last Update.
func (a *Activation) Backward(_, gradOutput *matrix.Matrix) *matrix.Matrix {
	if a.lastOutput == nil {
		cacheFault("Activation.Backward")
	}
	return gradOutput.Hadamard(a.lastOutput.Map(activations[a.kind].derivative))
}

// Update has no parameters to change; it only clears the cache.
func (a *Activation) Update(_ float32) {
	a.lastOutput = nil
}

// Name returns "Activation(kind)".
func (a *Activation) Name() string {
	return fmt.Sprintf("Activation(%s)", a.kind)
}

func (a *Activation) sealed() {}

// Kind returns the activation kind.
func (a *Activation) Kind() ActivationKind {
	return a.kind
}
