// Package core is the in-memory model of the road infrastructure registry:
// cities, the roads between them, and the budget assigned to each road.
//
// The Graph G = (V,E) keeps three structures in lockstep:
//
//   - Registry: ordered cities with a name→index lookup. Index = previous max + 1
//     (1 for the first city), never reused, unchanged by rename.
//   - Road grid: N×N matrix.Dense, 1 where a road exists, symmetric, zero diagonal.
//   - Budget grid: N×N matrix.Dense, symmetric, non-zero only where a road exists.
//
// Row/column k of both grids belongs to the city with index k+1.
//
// Core Methods:
//
//	// City lifecycle
//	AddCity(name string) (City, error)            // O(N²) grid growth
//	AddCities(names ...string) ([]City, error)    // stops at first failure
//	RenameCity(oldName, newName string) error     // O(1), grids untouched
//
//	// Road lifecycle
//	AddRoad(a, b string) error                    // O(1)
//	SetBudget(a, b string, amount float64) error  // O(1), re-settable
//	AddRoadWithBudget(a, b string, amount float64) error
//
//	// Query
//	FindByIndex(index int) (City, error)
//	FindByName(name string) (City, error)
//	HasRoad(a, b string) (bool, error)
//	Budget(a, b string) (float64, error)
//	Cities() []City, Roads() []Road, CityCount(), RoadCount()
//	View() *View                                  // immutable snapshot
//	Validate() error                              // invariant self-check
//
// Every mutation validates all of its preconditions before writing anything,
// so a failed call leaves the Graph exactly as it was. Failures are sentinel
// errors wrapped with the method and arguments; match them with errors.Is.
//
// All Graph methods take the Graph's sync.RWMutex, so a View taken from another
// goroutine (for example by a persistence sink) always observes a state between
// two whole operations.
//
// Seed data (SeedCities, SeedRoads, NewSeededGraph) is the fixed data set every
// session starts from.
//
// Errors:
//
//	ErrEmptyName      - city name is the empty string.
//	ErrDuplicateName  - city name already registered.
//	ErrCityNotFound   - name or index does not resolve to a city.
//	ErrSameName       - rename to the identical name.
//	ErrSelfLoop       - road from a city to itself.
//	ErrDuplicateRoad  - road already exists between the pair.
//	ErrNoRoad         - budget set where no road exists.
//	ErrNegativeBudget - budget amount below zero.
//	ErrInvalidBudget  - budget amount is NaN or ±Inf.
package core
