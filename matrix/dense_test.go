// Package matrix_test contains unit tests for the Dense grid.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/roadledger/matrix"
	"github.com/stretchr/testify/require"
)

// TestZeroValueDense ensures the zero value is a usable 0×0 grid.
func TestZeroValueDense(t *testing.T) {
	var m matrix.Dense
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.Empty(t, m.ToRows())

	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestAtOutOfRange ensures At() and SetSymmetric() return ErrOutOfRange on invalid access.
func TestAtOutOfRange(t *testing.T) {
	m := matrix.FromRows_TestOnly([][]float64{{0, 0}, {0, 0}})

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetSymmetric(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetSymmetric(0, -1, 1), matrix.ErrOutOfRange)
}

// TestSetSymmetricRejectsNaNInf checks the finite-value policy.
func TestSetSymmetricRejectsNaNInf(t *testing.T) {
	m := matrix.FromRows_TestOnly([][]float64{{0, 0}, {0, 0}})

	require.ErrorIs(t, m.SetSymmetric(0, 1, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.SetSymmetric(0, 1, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.SetSymmetric(0, 1, math.Inf(-1)), matrix.ErrNaNInf)

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Zero(t, v) // untouched
}

// TestSetSymmetric writes both mirror cells and fails atomically on bad indices.
func TestSetSymmetric(t *testing.T) {
	m := (&matrix.Dense{}).Grown().Grown().Grown()

	require.NoError(t, m.SetSymmetric(0, 2, 4.5))
	a, _ := m.At(0, 2)
	b, _ := m.At(2, 0)
	require.Equal(t, 4.5, a)
	require.Equal(t, 4.5, b)

	require.ErrorIs(t, m.SetSymmetric(1, 3, 1), matrix.ErrOutOfRange)
	require.Equal(t, [][]float64{{0, 0, 4.5}, {0, 0, 0}, {4.5, 0, 0}}, m.ToRows())

	rect := matrix.FromRows_TestOnly([][]float64{{0, 0, 0}, {0, 0, 0}})
	require.ErrorIs(t, rect.SetSymmetric(0, 1, 1), matrix.ErrNonSquare)
}

// TestGrownPreservesEntries checks that Grown keeps every cell at its position,
// zero-fills the new row and column, and leaves the receiver untouched.
func TestGrownPreservesEntries(t *testing.T) {
	m := matrix.FromRows_TestOnly([][]float64{{1, 2}, {3, 4}})

	g := m.Grown()
	require.Equal(t, 3, g.Rows())
	require.Equal(t, 3, g.Cols())
	require.Equal(t, [][]float64{{1, 2, 0}, {3, 4, 0}, {0, 0, 0}}, g.ToRows())

	// receiver unchanged
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())

	// growing from empty
	e := (&matrix.Dense{}).Grown()
	require.Equal(t, [][]float64{{0}}, e.ToRows())
}

// TestGrownIsIndependent ensures writes to a grown copy never reach the receiver.
func TestGrownIsIndependent(t *testing.T) {
	m := matrix.FromRows_TestOnly([][]float64{{0, 1}, {1, 0}})
	g := m.Grown()
	require.NoError(t, g.SetSymmetric(0, 1, 7))

	orig, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)
}

// TestNilDense ensures a nil receiver reports ErrNilMatrix instead of panicking.
func TestNilDense(t *testing.T) {
	var m *matrix.Dense
	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, m.SetSymmetric(0, 0, 1), matrix.ErrNilMatrix)
}
