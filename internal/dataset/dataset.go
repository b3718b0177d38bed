// Package dataset generates the prime classification dataset: every 10-bit
// integer encoded as a 0/1 feature vector and labelled by trial division.
package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jbarham/primegen"

	"github.com/born-ml/primenet/internal/matrix"
	"github.com/born-ml/primenet/internal/parallel"
)

// Encoding limits.
const (
	Bits     = 10
	MaxValue = 1<<Bits - 1
	Size     = MaxValue + 1
)

// Common errors.
var (
	ErrOutOfRange    = fmt.Errorf("value must be in [0, %d]", MaxValue)
	ErrInvalidBits   = errors.New("invalid bit vector")
	ErrLabelMismatch = errors.New("label disagrees with sieve")
)

// Sample is one (features, label) pair.
type Sample struct {
	Value    int
	Features [Bits]uint8 // most significant bit first
	Label    uint8       // 1 if Value is prime
}

// Input returns the features as a 1×Bits row.
func (s Sample) Input() *matrix.Matrix {
	row := make([]float32, Bits)
	for i, b := range s.Features {
		row[i] = float32(b)
	}
	return matrix.RowVector(row...)
}

// Target returns the label as a 1×1 matrix.
func (s Sample) Target() *matrix.Matrix {
	return matrix.RowVector(float32(s.Label))
}

// Prime reports whether the sample is labelled prime.
func (s Sample) Prime() bool {
	return s.Label == 1
}

// Encode returns the Bits-wide binary representation of n, most
// significant bit first. Only the low Bits bits of n are used.
func Encode(n int) [Bits]uint8 {
	var out [Bits]uint8
	for i := 0; i < Bits; i++ {
		out[i] = uint8((n >> (Bits - 1 - i)) & 1)
	}
	return out
}

// Decode is the inverse of Encode.
func Decode(bits []uint8) (int, error) {
	if len(bits) != Bits {
		return 0, fmt.Errorf("got %d bits, want %d: %w", len(bits), Bits, ErrInvalidBits)
	}
	n := 0
	for i, b := range bits {
		if b > 1 {
			return 0, fmt.Errorf("bit %d is %d: %w", i, b, ErrInvalidBits)
		}
		n = n<<1 | int(b)
	}
	return n, nil
}

// IsPrime tests n for primality by trial division up to √n.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// NewSample encodes and labels n.
func NewSample(n int) Sample {
	s := Sample{Value: n, Features: Encode(n)}
	if IsPrime(n) {
		s.Label = 1
	}
	return s
}

// Generate returns one sample for every value in [0, MaxValue], in order.
func Generate() []Sample {
	return GenerateWith(parallel.DefaultConfig())
}

// GenerateWith is Generate with an explicit parallelism config.
func GenerateWith(cfg parallel.Config) []Sample {
	return parallel.Map(Size, NewSample, cfg)
}

// SievePrimes returns every prime ≤ limit using a sieve of Atkin.
func SievePrimes(limit int) []int {
	var primes []int
	pg := primegen.New()
	for {
		p := pg.Next()
		if p > uint64(limit) {
			break
		}
		primes = append(primes, int(p))
	}
	return primes
}

// Verify cross-checks sample labels against SievePrimes.
func Verify(samples []Sample) error {
	maxValue := 0
	for _, s := range samples {
		maxValue = max(maxValue, s.Value)
	}

	primes := make(map[int]bool)
	for _, p := range SievePrimes(maxValue) {
		primes[p] = true
	}

	for _, s := range samples {
		if s.Prime() != primes[s.Value] {
			return fmt.Errorf("value %d labelled %d: %w", s.Value, s.Label, ErrLabelMismatch)
		}
	}
	return nil
}

// ParseValue parses a decimal integer in [0, MaxValue].
func ParseValue(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	if n < 0 || n > MaxValue {
		return 0, fmt.Errorf("%d: %w", n, ErrOutOfRange)
	}
	return n, nil
}

// CountPrimes returns the number of samples labelled prime.
func CountPrimes(samples []Sample) int {
	n := 0
	for _, s := range samples {
		if s.Prime() {
			n++
		}
	}
	return n
}
