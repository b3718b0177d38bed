// Package matrix implements the dense 2D float32 container used by the
// primenet engine.
//
// A Matrix is immutable by convention: every operation returns a new Matrix
// and only Set mutates in place. Shape violations are programmer errors and
// panic with a message naming the operation and the shapes involved.
package matrix

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors returned by fallible constructors.
var (
	ErrEmpty  = errors.New("matrix must have at least one row and one column")
	ErrRagged = errors.New("all rows must have the same number of columns")
)

// Matrix is a dense row-major matrix of float32 values.
//
// Invariant: rows >= 1, cols >= 1 and len(data) == rows*cols.
type Matrix struct {
	rows int
	cols int
	data []float32
}

// New creates a zero-filled matrix with the given shape.
//
// Panics if either dimension is smaller than 1.
func New(rows, cols int) *Matrix {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("Matrix.New: invalid shape %dx%d", rows, cols))
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float32, rows*cols),
	}
}

// FromRows creates a matrix from a slice of rows.
//
// The values are copied, so the caller may reuse the input slices.
// Returns ErrEmpty if there are no rows or the rows have no columns,
// and ErrRagged if the rows have different lengths.
func FromRows(rows [][]float32) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}

	cols := len(rows[0])
	m := New(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrRagged)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// MustFromRows is like FromRows but panics on error.
//
// Intended for literals in tests and fixed architectures.
func MustFromRows(rows [][]float32) *Matrix {
	m, err := FromRows(rows)
	if err != nil {
		panic(fmt.Sprintf("Matrix.FromRows: %v", err))
	}
	return m
}

// RowVector creates a 1xN matrix holding the given values.
//
// Panics if no values are given.
func RowVector(values ...float32) *Matrix {
	if len(values) == 0 {
		panic("Matrix.RowVector: " + ErrEmpty.Error())
	}
	m := New(1, len(values))
	copy(m.data, values)
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// Shape returns the dimensions as (rows, cols).
func (m *Matrix) Shape() (rows, cols int) {
	return m.rows, m.cols
}

// SameShape reports whether m and other have identical dimensions.
func (m *Matrix) SameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

// At returns the value at (row, col).
//
// Panics if the index is out of range.
func (m *Matrix) At(row, col int) float32 {
	m.checkIndex("At", row, col)
	return m.data[row*m.cols+col]
}

// Set stores value at (row, col).
//
// Set is the only operation that mutates a matrix in place.
// Panics if the index is out of range.
func (m *Matrix) Set(row, col int, value float32) {
	m.checkIndex("Set", row, col)
	m.data[row*m.cols+col] = value
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float32 {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("Matrix.Row: row %d out of range for %dx%d matrix", i, m.rows, m.cols))
	}
	out := make([]float32, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])
	return out
}

// ToRows returns the contents as a freshly allocated slice of rows.
func (m *Matrix) ToRows() [][]float32 {
	out := make([][]float32, m.rows)
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	c := New(m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

// Equal reports whether both matrices have the same shape and values.
func (m *Matrix) Equal(other *Matrix) bool {
	if !m.SameShape(other) {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether both matrices have the same shape and every
// pair of values differs by at most eps.
func (m *Matrix) ApproxEqual(other *Matrix, eps float32) bool {
	if !m.SameShape(other) {
		return false
	}
	for i, v := range m.data {
		d := v - other.data[i]
		if d < -eps || d > eps {
			return false
		}
	}
	return true
}

// String formats the matrix one row per line with two decimals.
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Matrix %dx%d\n", m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		sb.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%6.2f", m.data[i*m.cols+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

func (m *Matrix) checkIndex(op string, row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("Matrix.%s: index (%d, %d) out of range for %dx%d matrix", op, row, col, m.rows, m.cols))
	}
}
