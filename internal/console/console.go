// Package console implements the interactive text interface: train,
// infer, evaluate and edit the weights of a single prime classifier.
package console

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/born-ml/primenet/internal/dataset"
	"github.com/born-ml/primenet/internal/nn"
	"github.com/born-ml/primenet/internal/train"
)

// Config holds configuration for a console session.
type Config struct {
	Train      train.Config
	Activation nn.ActivationKind // hidden layer activation (default: sigmoid)
	Seed       int64             // weight init seed (default: 0 = time-based)
}

// Session owns one model and serves menu commands read from an input
// stream. A Session is not safe for concurrent use.
type Session struct {
	in      *bufio.Scanner
	out     io.Writer
	cfg     Config
	rng     *rand.Rand
	model   *nn.Model
	samples []dataset.Sample
}

// NewSession builds a fresh model and returns a session reading commands
// from in and writing to out.
func NewSession(in io.Reader, out io.Writer, cfg Config) (*Session, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	rng := rand.New(rand.NewSource(seed))

	model, err := nn.Build(nn.PrimeArchitecture(dataset.Bits, cfg.Activation), rng)
	if err != nil {
		return nil, fmt.Errorf("build model: %w", err)
	}

	return &Session{
		in:      bufio.NewScanner(in),
		out:     out,
		cfg:     cfg,
		rng:     rng,
		model:   model,
		samples: dataset.Generate(),
	}, nil
}

// Model returns the session's model.
func (s *Session) Model() *nn.Model {
	return s.model
}

// Run serves the main menu until the user quits or input ends.
func (s *Session) Run() error {
	for {
		s.printf("\n🤖 Prime Classifier\n")
		s.printf("1. Train the model\n")
		s.printf("2. Use the model\n")
		s.printf("3. Evaluate performance\n")
		s.printf("4. Show weights\n")
		s.printf("5. Edit a weight\n")
		s.printf("6. Randomize weights\n")
		s.printf("7. Zero weights\n")
		s.printf("8. Quit\n")

		choice, ok := s.prompt("Choose an option: ")
		if !ok {
			return s.in.Err()
		}

		switch choice {
		case "1":
			s.trainMenu()
		case "2":
			s.inferMenu()
		case "3":
			s.evaluateMenu()
		case "4":
			s.showWeights()
		case "5":
			s.editWeight()
		case "6":
			s.model.RandomizeWeights(s.rng)
			s.printf("🎲 Weights randomized.\n")
		case "7":
			s.model.ZeroWeights()
			s.printf("🧹 Weights zeroed.\n")
		case "8", "q", "Q":
			s.printf("👋 Bye!\n")
			return nil
		default:
			s.printf("Invalid option. Try again.\n")
		}
	}
}

func (s *Session) trainMenu() {
	line, ok := s.prompt(fmt.Sprintf("\n📚 Enter number of training samples (1-%d): ", dataset.Size))
	if !ok {
		return
	}
	count, err := strconv.Atoi(line)
	if err != nil || count < 1 || count > dataset.Size {
		s.printf("⚠️ Invalid sample count.\n")
		return
	}

	line, ok = s.prompt("🔁 Enter number of epochs [1]: ")
	if !ok {
		return
	}
	epochs := 1
	if line != "" {
		epochs, err = strconv.Atoi(line)
		if err != nil || epochs < 1 {
			s.printf("⚠️ Invalid epoch count.\n")
			return
		}
	}

	cfg := s.cfg.Train
	cfg.Samples = count
	cfg.Epochs = epochs
	trainer := train.NewTrainer(s.model, cfg)

	history := trainer.Fit(s.samples, func(st train.EpochStats) {
		s.printf("📚 Epoch %3d: Loss=%.6f, Accuracy=%6.2f%%\n", st.Epoch, st.Loss, st.Accuracy*100)
	})
	last := history[len(history)-1]
	s.printf("✅ Training complete. Avg loss: %.6f\n", last.Loss)
}

func (s *Session) inferMenu() {
	for {
		line, ok := s.prompt(fmt.Sprintf("🔢 Enter a number (0-%d) or 'q' to quit: ", dataset.MaxValue))
		if !ok || strings.EqualFold(line, "q") {
			return
		}

		n, err := dataset.ParseValue(line)
		if err != nil {
			s.printf("❌ Please enter a valid number (0–%d).\n", dataset.MaxValue)
			continue
		}

		sample := dataset.NewSample(n)
		s.printf("📥 Binary Input: %v\n", sample.Features)

		trace := s.model.ForwardTrace(sample.Input())
		for i, out := range trace[1:] {
			s.printf("🧠 %-18s: %s\n", layerLabel(s.model, i), formatRow(out.Row(0)))
		}

		pred := trace[len(trace)-1].At(0, 0)
		verdict := "Not Prime?"
		if pred >= train.Threshold {
			verdict = "Prime?"
		}
		actual := "Not Prime"
		if sample.Prime() {
			actual = "Prime"
		}
		s.printf("🎯 Prediction: %.4f → %s\n", pred, verdict)
		s.printf("✅ Actual: %s\n\n", actual)
	}
}

func (s *Session) evaluateMenu() {
	e := train.Evaluate(s.model, s.samples)
	s.printf("\n📊 Evaluation over %d samples\n", e.Total())
	s.printf("   Accuracy:  %6.2f%% (%d correct)\n", e.Accuracy()*100, e.Correct())
	s.printf("   Precision: %6.2f%%\n", e.Precision()*100)
	s.printf("   Recall:    %6.2f%%\n", e.Recall()*100)
	s.printf("                 predicted prime   predicted not\n")
	s.printf("   prime         %15d %15d\n", e.TruePositive, e.FalseNegative)
	s.printf("   not prime     %15d %15d\n", e.FalsePositive, e.TrueNegative)
}

func (s *Session) showWeights() {
	for i, layer := range s.model.Layers() {
		switch l := layer.(type) {
		case *nn.Dense:
			s.printf("📊 Dense Layer %d Weights:\n%s", i, l.Weights())
			s.printf("Biases:\n%s", l.Biases())
		case *nn.Activation:
			s.printf("⚙️ Activation Layer %d (%s, no weights)\n", i, l.Kind())
		}
	}
}

func (s *Session) editWeight() {
	line, ok := s.prompt("✏️ Enter layer row col value: ")
	if !ok {
		return
	}

	fields := strings.Fields(line)
	if len(fields) != 4 {
		s.printf("⚠️ Expected 4 values, got %d.\n", len(fields))
		return
	}

	var idx [3]int
	for i := range idx {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			s.printf("⚠️ Invalid index %q.\n", fields[i])
			return
		}
		idx[i] = v
	}
	value, err := strconv.ParseFloat(fields[3], 32)
	if err != nil {
		s.printf("⚠️ Invalid value %q.\n", fields[3])
		return
	}

	old, err := s.model.Weight(idx[0], idx[1], idx[2])
	if err != nil {
		s.printf("❌ %v\n", err)
		return
	}
	if err := s.model.SetWeight(idx[0], idx[1], idx[2], float32(value)); err != nil {
		s.printf("❌ %v\n", err)
		return
	}
	s.printf("✅ Weight [%d][%d][%d]: %.4f → %.4f\n", idx[0], idx[1], idx[2], old, float32(value))
}

func (s *Session) prompt(text string) (string, bool) {
	s.printf("%s", text)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// layerLabel names layer i for the inference trace: the first Dense layer
// is the input projection, the last Dense layer the output projection.
func layerLabel(model *nn.Model, i int) string {
	last := model.Len() - 1
	switch model.Layer(i).(type) {
	case *nn.Dense:
		switch {
		case i == 0:
			return "Input Projection"
		case i == last-1:
			return "Output Projection"
		default:
			return fmt.Sprintf("Hidden Layer %d", i/2)
		}
	case *nn.Activation:
		if i == last {
			return "Output Activation"
		}
		return fmt.Sprintf("Activation %d", i/2+1)
	}
	return "Unknown"
}

func formatRow(row []float32) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = fmt.Sprintf("%6.2f", v)
	}
	return strings.Join(parts, " ")
}
