package matrix

import "fmt"

// Map applies f to every element and returns the result.
// The shape is preserved.
func (m *Matrix) Map(f func(float32) float32) *Matrix {
	out := New(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = f(v)
	}
	return out
}

// MapRows applies a row-to-row function to every row.
//
// f receives a copy of each row and must return a row of the same width.
// Used to broadcast a bias row across all rows of a batch.
func (m *Matrix) MapRows(f func(row []float32) []float32) *Matrix {
	out := New(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		row := f(m.Row(i))
		if len(row) != m.cols {
			panic(fmt.Sprintf("Matrix.MapRows: row function returned %d values, want %d", len(row), m.cols))
		}
		copy(out.data[i*m.cols:(i+1)*m.cols], row)
	}
	return out
}

// Add returns the elementwise sum m + other.
func (m *Matrix) Add(other *Matrix) *Matrix {
	m.mustSameShape("Add", other)
	out := New(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = v + other.data[i]
	}
	return out
}

// Sub returns the elementwise difference m - other.
func (m *Matrix) Sub(other *Matrix) *Matrix {
	m.mustSameShape("Sub", other)
	out := New(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = v - other.data[i]
	}
	return out
}

// Hadamard returns the elementwise product m ⊙ other.
func (m *Matrix) Hadamard(other *Matrix) *Matrix {
	m.mustSameShape("Hadamard", other)
	out := New(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = v * other.data[i]
	}
	return out
}

// Scale returns m multiplied by the scalar s.
func (m *Matrix) Scale(s float32) *Matrix {
	return m.Map(func(v float32) float32 { return s * v })
}

// Dot returns the matrix product m·other.
//
// [m×k]·[k×n] = [m×n], result[i][j] = Σ_t m[i][t]·other[t][j].
// Panics if m.Cols() != other.Rows().
func (m *Matrix) Dot(other *Matrix) *Matrix {
	if m.cols != other.rows {
		panic(fmt.Sprintf("Matrix.Dot: cannot multiply %dx%d by %dx%d", m.rows, m.cols, other.rows, other.cols))
	}

	out := New(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		outRow := out.data[i*other.cols : (i+1)*other.cols]
		for t := 0; t < m.cols; t++ {
			a := m.data[i*m.cols+t]
			otherRow := other.data[t*other.cols : (t+1)*other.cols]
			for j, b := range otherRow {
				outRow[j] += a * b
			}
		}
	}
	return out
}

// Transpose returns mᵀ.
func (m *Matrix) Transpose() *Matrix {
	out := New(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return out
}

// SumRows returns the column-wise sum as a 1×cols row.
func (m *Matrix) SumRows() *Matrix {
	out := New(1, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j] += m.data[i*m.cols+j]
		}
	}
	return out
}

// Sum returns the sum of all elements.
func (m *Matrix) Sum() float32 {
	var total float32
	for _, v := range m.data {
		total += v
	}
	return total
}

// Len returns the number of elements.
func (m *Matrix) Len() int {
	return len(m.data)
}

func (m *Matrix) mustSameShape(op string, other *Matrix) {
	if !m.SameShape(other) {
		panic(fmt.Sprintf("Matrix.%s: shape mismatch %dx%d vs %dx%d", op, m.rows, m.cols, other.rows, other.cols))
	}
}
