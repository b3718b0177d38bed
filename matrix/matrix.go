// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public API for the dense float32 matrix used
// throughout primenet.
//
// Matrices are immutable by convention: Map, MapRows, Add, Sub, Hadamard,
// Scale, Dot, Transpose and SumRows all return new values. Set is the only
// in-place mutation. Shape mismatches panic.
//
// Example:
//
//	a := matrix.MustFromRows([][]float32{{1, 2}, {3, 4}})
//	b := a.Dot(a.Transpose())
package matrix

import "github.com/born-ml/primenet/internal/matrix"

// Matrix is a dense row-major float32 matrix.
type Matrix = matrix.Matrix

// Errors returned by FromRows.
var (
	ErrEmpty  = matrix.ErrEmpty
	ErrRagged = matrix.ErrRagged
)

// New creates a zero-filled matrix.
func New(rows, cols int) *Matrix {
	return matrix.New(rows, cols)
}

// FromRows creates a matrix from rows of equal length.
func FromRows(rows [][]float32) (*Matrix, error) {
	return matrix.FromRows(rows)
}

// MustFromRows is like FromRows but panics on error.
func MustFromRows(rows [][]float32) *Matrix {
	return matrix.MustFromRows(rows)
}

// RowVector creates a 1xN matrix.
func RowVector(values ...float32) *Matrix {
	return matrix.RowVector(values...)
}
