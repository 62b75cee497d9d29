// File: view.go
// Role: Immutable, read-only snapshot of a Graph for persistence and display.
// Determinism:
//   - Cities() ascending index; Roads() row-major over the upper triangle.
// Concurrency:
//   - View() copies under the Graph read lock; the View itself is never mutated,
//     so any number of goroutines may read it.

package core

// View is a deep copy of a Graph's state at one instant.
type View struct {
	cities  []City
	roads   [][]float64
	budgets [][]float64
}

// View returns an immutable snapshot of the current state.
// Complexity: O(N²).
func (g *Graph) View() *View {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return &View{
		cities:  g.cities.Cities(),
		roads:   g.roads.ToRows(),
		budgets: g.budgets.ToRows(),
	}
}

// Cities returns (index, name) pairs in ascending index order.
func (v *View) Cities() []City {
	out := make([]City, len(v.cities))
	copy(out, v.cities)

	return out
}

// CityCount returns the number of cities in the snapshot.
func (v *View) CityCount() int { return len(v.cities) }

// Roads enumerates each road exactly once: pairs i<j with a road, in row-major
// order, each with its budget and a 1-based Number assigned in scan order.
// Numbers are recomputed on every call.
// Complexity: O(N²).
func (v *View) Roads() []Road {
	var out []Road
	n := len(v.cities)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if v.roads[i][j] != roadPresent {
				continue
			}
			out = append(out, Road{
				Number: len(out) + 1,
				From:   v.cities[i],
				To:     v.cities[j],
				Budget: v.budgets[i][j],
			})
		}
	}

	return out
}

// Adjacency returns the road grid as 0/1 integers.
func (v *View) Adjacency() [][]int {
	out := make([][]int, len(v.roads))
	for i, row := range v.roads {
		out[i] = make([]int, len(row))
		for j, x := range row {
			out[i][j] = int(x)
		}
	}

	return out
}

// Budgets returns a copy of the budget grid.
func (v *View) Budgets() [][]float64 {
	out := make([][]float64, len(v.budgets))
	for i, row := range v.budgets {
		out[i] = append([]float64(nil), row...)
	}

	return out
}
