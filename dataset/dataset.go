// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset provides the 10-bit prime classification dataset.
package dataset

import "github.com/born-ml/primenet/internal/dataset"

// Encoding limits.
const (
	Bits     = dataset.Bits
	MaxValue = dataset.MaxValue
	Size     = dataset.Size
)

// Sample is one (features, label) pair.
type Sample = dataset.Sample

// Generate returns one sample per value in [0, MaxValue].
func Generate() []Sample {
	return dataset.Generate()
}

// Encode returns the MSB-first binary representation of n.
func Encode(n int) [Bits]uint8 {
	return dataset.Encode(n)
}

// IsPrime tests n by trial division.
func IsPrime(n int) bool {
	return dataset.IsPrime(n)
}
