// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary getters on top of the core types.
// Policy:
//   - No mutation and no hidden state here.
//   - Every exported function documents complexity and locking.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	CityCount         int     // registered cities
	RoadCount         int     // existing roads
	BudgetedRoadCount int     // roads with a non-zero budget
	TotalBudget       float64 // sum of all road budgets, each road counted once
}

// Stats produces a deterministic, read-only summary of the graph.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Scan the strict upper triangle of the budget grid once.
//
// Determinism:
//   - Row-major summation order, so TotalBudget is reproducible bit for bit.
//
// Complexity:
//   - Time O(N²), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		CityCount: g.cities.Len(),
		RoadCount: g.roadCount,
	}
	n := g.cities.Len()
	var i, j int
	var b float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			b, _ = g.budgets.At(i, j)
			if b != 0 {
				stats.BudgetedRoadCount++
				stats.TotalBudget += b
			}
		}
	}

	return &stats
}
