package train

import (
	"github.com/born-ml/primenet/internal/dataset"
	"github.com/born-ml/primenet/internal/matrix"
	"github.com/born-ml/primenet/internal/nn"
)

// Evaluation is a binary confusion matrix over a set of samples.
type Evaluation struct {
	TruePositive  int
	FalsePositive int
	TrueNegative  int
	FalseNegative int
}

// Total returns the number of evaluated samples.
func (e Evaluation) Total() int {
	return e.TruePositive + e.FalsePositive + e.TrueNegative + e.FalseNegative
}

// Correct returns the number of correctly classified samples.
func (e Evaluation) Correct() int {
	return e.TruePositive + e.TrueNegative
}

// Accuracy returns Correct/Total, or 0 for an empty evaluation.
func (e Evaluation) Accuracy() float32 {
	return ratio(e.Correct(), e.Total())
}

// Precision returns TP/(TP+FP), or 0 when nothing was predicted prime.
func (e Evaluation) Precision() float32 {
	return ratio(e.TruePositive, e.TruePositive+e.FalsePositive)
}

// Recall returns TP/(TP+FN), or 0 when there are no primes.
func (e Evaluation) Recall() float32 {
	return ratio(e.TruePositive, e.TruePositive+e.FalseNegative)
}

func ratio(a, b int) float32 {
	if b == 0 {
		return 0
	}
	return float32(a) / float32(b)
}

// Predict runs the model on input and returns the first output value and
// whether it reaches Threshold.
func Predict(model *nn.Model, input *matrix.Matrix) (float32, bool) {
	p := model.Forward(input).At(0, 0)
	return p, p >= Threshold
}

// Evaluate classifies every sample and tallies the confusion matrix.
func Evaluate(model *nn.Model, samples []dataset.Sample) Evaluation {
	var e Evaluation
	for _, s := range samples {
		_, prime := Predict(model, s.Input())
		switch {
		case prime && s.Prime():
			e.TruePositive++
		case prime && !s.Prime():
			e.FalsePositive++
		case !prime && !s.Prime():
			e.TrueNegative++
		default:
			e.FalseNegative++
		}
	}
	return e
}
