// File: validate.go
// Role: Structural self-check of a Graph against its invariants.

package core

import (
	"fmt"

	"github.com/katalvlaran/roadledger/matrix"
)

// Validate checks every Graph invariant and returns the first violation:
//   - both grids are N×N with N = CityCount();
//   - road grid is symmetric, entries in {0,1}, zero diagonal;
//   - budget grid is symmetric and non-zero only where a road exists;
//   - registry indices are 1..N in order and the name lookup agrees.
//
// It never mutates the Graph; tests call it after every operation.
// Complexity: O(N²).
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := g.cities.Len()
	if err := matrix.ValidateSquare(g.roads); err != nil {
		return fmt.Errorf("roads: %w", err)
	}
	if g.roads.Rows() != n {
		return fmt.Errorf("roads: %d×%d for %d cities: %w", g.roads.Rows(), g.roads.Cols(), n, matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidateSameShape(g.budgets, g.roads); err != nil {
		return fmt.Errorf("budgets: %w", err)
	}
	if err := matrix.ValidateSymmetric(g.roads, 0); err != nil {
		return fmt.Errorf("roads: %w", err)
	}
	if err := matrix.ValidateZeroDiagonal(g.roads); err != nil {
		return fmt.Errorf("roads: %w", err)
	}
	if err := matrix.ValidateSymmetric(g.budgets, 0); err != nil {
		return fmt.Errorf("budgets: %w", err)
	}
	if err := matrix.ValidateMask(g.budgets, g.roads); err != nil {
		return fmt.Errorf("budgets: %w", err)
	}

	count := 0
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v, _ = g.roads.At(i, j)
			switch v {
			case 0:
			case roadPresent:
				count++
			default:
				return fmt.Errorf("roads(%d,%d)=%g: %w", i, j, v, matrix.ErrMaskViolation)
			}
		}
	}
	if count != g.roadCount {
		return fmt.Errorf("road count %d, grid holds %d: %w", g.roadCount, count, matrix.ErrDimensionMismatch)
	}

	if len(g.cities.byName) != n {
		return fmt.Errorf("name lookup holds %d of %d cities: %w", len(g.cities.byName), n, ErrCityNotFound)
	}
	for k, c := range g.cities.cities {
		if c.Index != k+1 {
			return fmt.Errorf("city %q at position %d has index %d: %w", c.Name, k, c.Index, ErrCityNotFound)
		}
		if idx, ok := g.cities.byName[c.Name]; !ok || idx != c.Index {
			return fmt.Errorf("name lookup for %q: %w", c.Name, ErrCityNotFound)
		}
	}

	return nil
}
