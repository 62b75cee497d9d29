// SPDX-License-Identifier: MIT
// File: dense.go
// Role: Dense row-major float64 grid with copy-on-grow semantics.
//
// Determinism:
//   - Row-major layout; ToRows scans rows top to bottom.
//
// Concurrency:
//   - Dense carries no lock. Owners (core.Graph) serialize access.

package matrix

import (
	"fmt"
	"math"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The zero value is a valid 0×0 Dense and is the starting point of every
// ledger; Grown is the only way to add rows and columns.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if m == nil {
		return 0, denseErrorf(method, row, col, ErrNilMatrix)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// SetSymmetric assigns v at both (i, j) and (j, i).
// Both positions are validated before either is written, so a failed call
// leaves the matrix untouched.
// Complexity: O(1).
func (m *Dense) SetSymmetric(i, j int, v float64) error {
	if m != nil && m.r != m.c {
		return denseErrorf("SetSymmetric", i, j, ErrNonSquare)
	}
	ij, err := m.indexOf("SetSymmetric", i, j)
	if err != nil {
		return err
	}
	ji, err := m.indexOf("SetSymmetric", j, i)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf("SetSymmetric", i, j, ErrNaNInf)
	}
	m.data[ij] = v
	m.data[ji] = v

	return nil
}

// Grown returns a fresh (r+1)×(c+1) copy of m with every existing entry kept at
// its (row, col) position and the new last row and column zero-filled.
// The receiver is not modified, which lets callers prepare several grown grids
// and commit them together.
// Complexity: O(r*c).
func (m *Dense) Grown() *Dense {
	out := &Dense{r: m.r + 1, c: m.c + 1, data: make([]float64, (m.r+1)*(m.c+1))}
	var i int
	for i = 0; i < m.r; i++ {
		copy(out.data[i*out.c:i*out.c+m.c], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// ToRows returns the matrix as a freshly allocated [][]float64.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	rows := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		rows[i] = make([]float64, m.c)
		copy(rows[i], m.data[i*m.c:(i+1)*m.c])
	}

	return rows
}
