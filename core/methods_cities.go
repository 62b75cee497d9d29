// File: methods_cities.go
// Role: City lifecycle & queries on Graph: AddCity, AddCities, RenameCity,
//       FindByIndex, FindByName, Cities, CityCount.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "strconv"

// AddCity registers a new city and grows the road and budget grids by one row
// and one column.
//
// Implementation:
//   - Stage 1: Validate the name against the registry (nothing mutated yet).
//   - Stage 2: Build the grown road and budget grids off to the side.
//   - Stage 3: Commit registry entry and both grids together.
//
// Behavior highlights:
//   - On failure the registry and both grids are untouched.
//   - The new city gets index previous max + 1 (1 for an empty graph).
//
// Errors:
//   - ErrEmptyName, ErrDuplicateName.
//
// Complexity:
//   - Time O(N²) for the grid copies, Space O(N²).
func (g *Graph) AddCity(name string) (City, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addCityLocked(name)
}

// addCityLocked implements AddCity; caller holds g.mu.
func (g *Graph) addCityLocked(name string) (City, error) {
	if err := g.cities.checkAdd(name); err != nil {
		return City{}, graphErrorf("AddCity", strconv.Quote(name), err)
	}

	roads := g.roads.Grown()
	budgets := g.budgets.Grown()

	c, err := g.cities.Add(name)
	if err != nil {
		// checkAdd above already ruled this out.
		return City{}, graphErrorf("AddCity", strconv.Quote(name), err)
	}
	g.roads, g.budgets = roads, budgets

	return c, nil
}

// AddCities adds names in order, one AddCity each, and stops at the first
// failure. Cities added before the failure remain registered; the returned
// slice lists them.
//
// Complexity: O(k·N²) for k names.
func (g *Graph) AddCities(names ...string) ([]City, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	added := make([]City, 0, len(names))
	for _, name := range names {
		c, err := g.addCityLocked(name)
		if err != nil {
			return added, err
		}
		added = append(added, c)
	}

	return added, nil
}

// RenameCity changes a city's name. Its index, and therefore its row and
// column in both grids, is unchanged.
//
// Errors:
//   - ErrCityNotFound, ErrSameName, ErrEmptyName, ErrDuplicateName.
//
// Complexity: O(1).
func (g *Graph) RenameCity(oldName, newName string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.cities.Rename(oldName, newName); err != nil {
		return graphErrorf("RenameCity", strconv.Quote(oldName)+"→"+strconv.Quote(newName), err)
	}

	return nil
}

// FindByIndex returns the city with the given index, or ErrCityNotFound.
// Complexity: O(1).
func (g *Graph) FindByIndex(index int) (City, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c, ok := g.cities.city(index)
	if !ok {
		return City{}, graphErrorf("FindByIndex", strconv.Itoa(index), ErrCityNotFound)
	}

	return c, nil
}

// FindByName returns the city with the exact given name, or ErrCityNotFound.
// Complexity: O(1).
func (g *Graph) FindByName(name string) (City, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c, err := g.resolve(name)
	if err != nil {
		return City{}, graphErrorf("FindByName", strconv.Quote(name), err)
	}

	return c, nil
}

// resolve maps a name to its City; caller holds g.mu.
func (g *Graph) resolve(name string) (City, error) {
	idx, ok := g.cities.IndexOf(name)
	if !ok {
		return City{}, ErrCityNotFound
	}
	c, _ := g.cities.city(idx)

	return c, nil
}

// Cities returns all cities in ascending index order.
func (g *Graph) Cities() []City {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cities.Cities()
}

// CityCount returns the number of registered cities.
func (g *Graph) CityCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cities.Len()
}
