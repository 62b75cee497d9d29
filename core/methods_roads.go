// File: methods_roads.go
// Role: Road and budget mutations & queries: AddRoad, SetBudget,
//       AddRoadWithBudget, HasRoad, Budget, RoadCount, Roads.
//
// Determinism:
//   - Roads() scans the upper triangle row-major, so numbering is stable for a
//     fixed state.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/roadledger/matrix"
)

// pairSubject renders a city pair for error context.
func pairSubject(a, b string) string {
	return strconv.Quote(a) + "," + strconv.Quote(b)
}

// resolvePair resolves both names; caller holds g.mu.
func (g *Graph) resolvePair(a, b string) (City, City, error) {
	ca, err := g.resolve(a)
	if err != nil {
		return City{}, City{}, err
	}
	cb, err := g.resolve(b)
	if err != nil {
		return City{}, City{}, err
	}

	return ca, cb, nil
}

// hasRoadLocked reports whether the grid marks a road between positions i and j.
func (g *Graph) hasRoadLocked(i, j int) bool {
	v, err := g.roads.At(i, j)
	return err == nil && v == roadPresent
}

// checkRoad validates an AddRoad request; caller holds g.mu.
func (g *Graph) checkRoad(a, b string) (City, City, error) {
	if a == b {
		return City{}, City{}, ErrSelfLoop
	}
	ca, cb, err := g.resolvePair(a, b)
	if err != nil {
		return City{}, City{}, err
	}
	if g.hasRoadLocked(ca.Position(), cb.Position()) {
		return City{}, City{}, ErrDuplicateRoad
	}

	return ca, cb, nil
}

// checkBudget validates a budget amount.
func checkBudget(amount float64) error {
	if amount < 0 {
		return ErrNegativeBudget
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ErrInvalidBudget
	}

	return nil
}

// AddRoad creates an undirected road between two distinct, existing cities.
//
// Implementation:
//   - Stage 1: Reject a == b (ErrSelfLoop) before resolving names.
//   - Stage 2: Resolve both names (ErrCityNotFound).
//   - Stage 3: Reject an existing road (ErrDuplicateRoad).
//   - Stage 4: Mark both (i,j) and (j,i) in the road grid.
//
// Behavior highlights:
//   - The budget of a new road is 0 (unset).
//
// Complexity: O(1).
func (g *Graph) AddRoad(a, b string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	ca, cb, err := g.checkRoad(a, b)
	if err != nil {
		return graphErrorf("AddRoad", pairSubject(a, b), err)
	}
	g.markRoad(ca, cb)

	return nil
}

// markRoad sets the road cells for a validated pair; caller holds g.mu.
func (g *Graph) markRoad(ca, cb City) {
	mustSetCells(g.roads, ca, cb, roadPresent)
	g.roadCount++
}

// markBudget sets the budget cells for a validated pair; caller holds g.mu.
func (g *Graph) markBudget(ca, cb City, amount float64) {
	mustSetCells(g.budgets, ca, cb, amount)
}

// mustSetCells writes a mirror pair that the caller has already validated.
// Positions come from the registry, the grids share its dimension and the value
// passed checkBudget, so an error here means the Graph itself is corrupt.
func mustSetCells(m *matrix.Dense, ca, cb City, v float64) {
	if err := m.SetSymmetric(ca.Position(), cb.Position(), v); err != nil {
		panic(fmt.Sprintf("core: grid out of step with registry: %v", err))
	}
}

// SetBudget sets the budget of the road between a and b, overwriting any
// previous value. Setting the same amount twice is a no-op.
//
// Errors (in check order):
//   - ErrNegativeBudget: amount < 0.
//   - ErrInvalidBudget: amount is NaN or +Inf.
//   - ErrCityNotFound: either name does not resolve.
//   - ErrNoRoad: no road between a and b.
//
// Complexity: O(1).
func (g *Graph) SetBudget(a, b string, amount float64) error {
	if err := checkBudget(amount); err != nil {
		return graphErrorf("SetBudget", pairSubject(a, b), err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ca, cb, err := g.resolvePair(a, b)
	if err != nil {
		return graphErrorf("SetBudget", pairSubject(a, b), err)
	}
	if !g.hasRoadLocked(ca.Position(), cb.Position()) {
		return graphErrorf("SetBudget", pairSubject(a, b), ErrNoRoad)
	}
	g.markBudget(ca, cb, amount)

	return nil
}

// AddRoadWithBudget creates a road and sets its budget as one operation.
// Every AddRoad and SetBudget precondition is checked before anything is
// written, so a failure leaves both grids untouched.
//
// Complexity: O(1).
func (g *Graph) AddRoadWithBudget(a, b string, amount float64) error {
	if err := checkBudget(amount); err != nil {
		return graphErrorf("AddRoadWithBudget", pairSubject(a, b), err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ca, cb, err := g.checkRoad(a, b)
	if err != nil {
		return graphErrorf("AddRoadWithBudget", pairSubject(a, b), err)
	}
	g.markRoad(ca, cb)
	g.markBudget(ca, cb, amount)

	return nil
}

// HasRoad reports whether a road exists between a and b.
// Errors: ErrCityNotFound if either name does not resolve.
func (g *Graph) HasRoad(a, b string) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ca, cb, err := g.resolvePair(a, b)
	if err != nil {
		return false, graphErrorf("HasRoad", pairSubject(a, b), err)
	}

	return g.hasRoadLocked(ca.Position(), cb.Position()), nil
}

// Budget returns the budget stored for the road between a and b.
// Errors: ErrCityNotFound, ErrNoRoad.
func (g *Graph) Budget(a, b string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ca, cb, err := g.resolvePair(a, b)
	if err != nil {
		return 0, graphErrorf("Budget", pairSubject(a, b), err)
	}
	if !g.hasRoadLocked(ca.Position(), cb.Position()) {
		return 0, graphErrorf("Budget", pairSubject(a, b), ErrNoRoad)
	}
	v, _ := g.budgets.At(ca.Position(), cb.Position())

	return v, nil
}

// RoadCount returns the number of roads. Complexity: O(1).
func (g *Graph) RoadCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.roadCount
}

// Roads enumerates roads once each in row-major (i<j) order, numbered from 1.
// Complexity: O(N²).
func (g *Graph) Roads() []Road {
	return g.View().Roads()
}
