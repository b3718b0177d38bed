// Package main provides the primenet CLI: train a small feed-forward
// network to recognize 10-bit primes, in batch or interactive mode.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/born-ml/primenet/internal/console"
	"github.com/born-ml/primenet/internal/dataset"
	"github.com/born-ml/primenet/internal/nn"
	"github.com/born-ml/primenet/internal/train"
)

const version = "v0.1.0"

func main() {
	epochs := flag.Int("epochs", 20, "Number of training epochs")
	lr := flag.Float64("lr", 0.1, "Learning rate for gradient descent")
	samples := flag.Int("samples", 0, "Train on the first N samples only (0 = all 1024)")
	seed := flag.Int64("seed", 0, "Weight initialization seed (0 = time-based)")
	normalize := flag.Bool("normalize-grad", false, "Divide the output gradient by the number of outputs")
	activation := flag.String("activation", "sigmoid", "Hidden layer activation: sigmoid, relu, leaky_relu")
	interactive := flag.Bool("interactive", false, "Run the interactive console")
	showVersion := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *showVersion {
		fmt.Printf("primenet %s\n", version)
		return
	}

	kind, err := nn.ParseActivation(*activation)
	if err != nil {
		log.Fatalf("Invalid -activation: %v", err)
	}
	if err := validateFlags(*epochs, *lr, *samples); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	cfg := train.Config{
		LearningRate:      float32(*lr),
		Epochs:            *epochs,
		Samples:           *samples,
		NormalizeGradient: *normalize,
	}

	if *interactive {
		session, err := console.NewSession(os.Stdin, os.Stdout, console.Config{
			Train:      cfg,
			Activation: kind,
			Seed:       *seed,
		})
		if err != nil {
			log.Fatalf("Failed to start console: %v", err)
		}
		if err := session.Run(); err != nil {
			log.Fatalf("Console: %v", err)
		}
		return
	}

	if err := runBatch(os.Stdout, cfg, kind, *seed); err != nil {
		log.Fatalf("Training failed: %v", err)
	}
}

// validateFlags rejects numeric flag values the trainer cannot honor.
func validateFlags(epochs int, lr float64, samples int) error {
	if epochs < 1 {
		return fmt.Errorf("-epochs: %d (must be at least 1)", epochs)
	}
	if lr <= 0 {
		return fmt.Errorf("-lr: %g (must be positive)", lr)
	}
	if samples < 0 || samples > dataset.Size {
		return fmt.Errorf("-samples: %d (must be 0-%d)", samples, dataset.Size)
	}
	return nil
}

// runBatch trains a fresh model on the full dataset and prints progress.
func runBatch(w io.Writer, cfg train.Config, hidden nn.ActivationKind, seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	rng := rand.New(rand.NewSource(seed))

	fmt.Fprintln(w, "🚀 primenet - Prime Classification (10-bit integers)")
	fmt.Fprintln(w, strings.Repeat("=", 60))

	fmt.Fprintln(w, "\n📊 Generating dataset...")
	data := dataset.Generate()
	if err := dataset.Verify(data); err != nil {
		return fmt.Errorf("dataset labels: %w", err)
	}
	fmt.Fprintf(w, "   %d samples, %d primes\n", len(data), dataset.CountPrimes(data))

	model, err := nn.Build(nn.PrimeArchitecture(dataset.Bits, hidden), rng)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\n🧠 Model:")
	for _, line := range model.Summary() {
		fmt.Fprintf(w, "   %s\n", line)
	}
	fmt.Fprintf(w, "   %d trainable parameters\n", model.NumParameters())

	trainer := train.NewTrainer(model, cfg)
	eff := trainer.Config()
	fmt.Fprintf(w, "\n⚙️  Training Configuration:\n")
	fmt.Fprintf(w, "   Learning rate: %g\n", eff.LearningRate)
	fmt.Fprintf(w, "   Epochs: %d\n", eff.Epochs)
	fmt.Fprintf(w, "   Seed: %d\n", seed)
	fmt.Fprintf(w, "   Normalized gradient: %v\n", eff.NormalizeGradient)

	fmt.Fprintln(w, "\n🎓 Starting training...")
	trainer.Fit(data, func(s train.EpochStats) {
		fmt.Fprintf(w, "📚 Epoch %3d: Loss=%.6f, Accuracy=%6.2f%%\n", s.Epoch, s.Loss, s.Accuracy*100)
	})
	fmt.Fprintln(w, "✅ Training complete.")

	e := train.Evaluate(model, data)
	fmt.Fprintf(w, "\n🎯 Final Results:\n")
	fmt.Fprintf(w, "   Accuracy:  %.2f%%\n", e.Accuracy()*100)
	fmt.Fprintf(w, "   Precision: %.2f%%\n", e.Precision()*100)
	fmt.Fprintf(w, "   Recall:    %.2f%%\n", e.Recall()*100)

	return nil
}
