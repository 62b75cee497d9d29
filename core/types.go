// SPDX-License-Identifier: MIT
// File: types.go
// Role: City/Road value types, sentinel errors, Graph state and options.

package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/roadledger/matrix"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyName indicates that a city name is the empty string.
	ErrEmptyName = errors.New("core: city name is empty")

	// ErrDuplicateName indicates that a city with this name already exists.
	ErrDuplicateName = errors.New("core: city already exists")

	// ErrCityNotFound indicates an operation referenced a non-existent city name or index.
	ErrCityNotFound = errors.New("core: city not found")

	// ErrSameName indicates a rename whose old and new names are identical.
	ErrSameName = errors.New("core: new name equals current name")

	// ErrSelfLoop indicates a road was requested between a city and itself.
	ErrSelfLoop = errors.New("core: road endpoints must differ")

	// ErrDuplicateRoad indicates a road already exists between the two cities.
	ErrDuplicateRoad = errors.New("core: road already exists")

	// ErrNoRoad indicates a budget was set on a pair with no road between them.
	ErrNoRoad = errors.New("core: no road between cities")

	// ErrNegativeBudget indicates a budget amount below zero.
	ErrNegativeBudget = errors.New("core: budget must not be negative")

	// ErrInvalidBudget indicates a budget amount that is NaN or infinite.
	ErrInvalidBudget = errors.New("core: budget must be a finite number")
)

// graphErrorf wraps a sentinel with the Graph method name and its subject.
func graphErrorf(method, subject string, err error) error {
	return fmt.Errorf("Graph.%s(%s): %w", method, subject, err)
}

// roadPresent is the adjacency grid value marking an existing road.
const roadPresent = 1.0

// City is a registered city.
//
// Index is assigned once at creation (previous max + 1, starting at 1) and is
// never reused or changed; Name may change through Rename.
type City struct {
	// Index is the stable, 1-based identity of the city.
	Index int

	// Name is unique among all cities (case-sensitive exact match).
	Name string
}

// Position returns the zero-based row/column of the city in the road and budget grids.
func (c City) Position() int { return c.Index - 1 }

// Road is one undirected road as seen by an enumeration.
//
// Number is a presentation artifact: the 1-based position of the road in the
// row-major (i<j) scan that produced it. It is recomputed on every scan and is
// not a stable identifier.
type Road struct {
	Number int
	From   City
	To     City
	Budget float64
}

// Name renders the road as "<from>-<to>" in grid order (lower index first).
func (r Road) Name() string { return r.From.Name + "-" + r.To.Name }

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the city registry for n cities.
// Grids are still created empty; they grow one city at a time.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.cities = NewRegistry(n)
		}
	}
}

// Graph is the road infrastructure graph.
//
// cities, roads and budgets always share one dimension N = cities.Len():
// roads and budgets are N×N and row/column k belongs to the city with index k+1.
// Invariants held between any two method calls:
//   - roads[i][j] == roads[j][i] ∈ {0,1}, roads[i][i] == 0;
//   - budgets[i][j] == budgets[j][i];
//   - budgets[i][j] != 0 ⇒ roads[i][j] == 1.
type Graph struct {
	mu sync.RWMutex // guards every field below

	cities    *Registry     // ordered cities + name lookup
	roads     *matrix.Dense // adjacency grid, entries 0 or 1
	budgets   *matrix.Dense // budget grid, same shape as roads
	roadCount int           // number of i<j pairs with roads[i][j] == 1
}

// NewGraph creates an empty Graph (no cities, 0×0 grids).
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		cities:  NewRegistry(0),
		roads:   &matrix.Dense{},
		budgets: &matrix.Dense{},
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
