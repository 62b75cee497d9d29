// File: registry.go
// Role: City catalog: ordered cities plus a name→index lookup kept in step.
//
// Determinism:
//   - Cities() returns ascending index order (equal to insertion order).
//
// Concurrency:
//   - Registry has no lock of its own; Graph guards it.

package core

// Registry owns the set of cities, assigns indices and resolves names.
//
// cities[k] always holds the city with Index k+1, because indices are assigned
// sequentially from 1 and cities are never removed. byName maps every current
// name to its index; both structures are updated in the same call.
type Registry struct {
	cities []City
	byName map[string]int
}

// NewRegistry returns an empty Registry with room for capacity cities.
func NewRegistry(capacity int) *Registry {
	if capacity < 0 {
		capacity = 0
	}

	return &Registry{
		cities: make([]City, 0, capacity),
		byName: make(map[string]int, capacity),
	}
}

// nextIndex returns the index the next added city will receive.
func (r *Registry) nextIndex() int {
	if len(r.cities) == 0 {
		return 1
	}

	return r.cities[len(r.cities)-1].Index + 1
}

// checkAdd reports why name cannot be added, or nil if it can.
func (r *Registry) checkAdd(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, exists := r.byName[name]; exists {
		return ErrDuplicateName
	}

	return nil
}

// Add registers name with the next sequential index.
//
// Errors:
//   - ErrEmptyName: name == "".
//   - ErrDuplicateName: name already registered.
//
// Complexity: O(1) amortized.
func (r *Registry) Add(name string) (City, error) {
	if err := r.checkAdd(name); err != nil {
		return City{}, err
	}
	c := City{Index: r.nextIndex(), Name: name}
	r.cities = append(r.cities, c)
	r.byName[name] = c.Index

	return c, nil
}

// checkRename reports why oldName cannot become newName, or nil if it can.
// Precondition order: not found, same name, empty, duplicate.
func (r *Registry) checkRename(oldName, newName string) error {
	if _, ok := r.byName[oldName]; !ok {
		return ErrCityNotFound
	}
	if oldName == newName {
		return ErrSameName
	}
	if newName == "" {
		return ErrEmptyName
	}
	if _, exists := r.byName[newName]; exists {
		return ErrDuplicateName
	}

	return nil
}

// Rename changes a city's name in place; its index is preserved.
//
// Errors:
//   - ErrCityNotFound: oldName not registered.
//   - ErrSameName: oldName == newName.
//   - ErrEmptyName: newName == "".
//   - ErrDuplicateName: newName already registered.
//
// Complexity: O(1).
func (r *Registry) Rename(oldName, newName string) error {
	if err := r.checkRename(oldName, newName); err != nil {
		return err
	}
	idx := r.byName[oldName]
	r.cities[idx-1].Name = newName
	delete(r.byName, oldName)
	r.byName[newName] = idx

	return nil
}

// IndexOf resolves an exact name to its index.
func (r *Registry) IndexOf(name string) (int, bool) {
	idx, ok := r.byName[name]
	return idx, ok
}

// NameOf resolves an index to the city's current name.
func (r *Registry) NameOf(index int) (string, bool) {
	c, ok := r.city(index)
	return c.Name, ok
}

// city returns the City with the given index.
func (r *Registry) city(index int) (City, bool) {
	if index < 1 || index > len(r.cities) {
		return City{}, false
	}

	return r.cities[index-1], true
}

// Len returns the number of registered cities.
func (r *Registry) Len() int { return len(r.cities) }

// Cities returns a copy of all cities in ascending index order.
// Complexity: O(N).
func (r *Registry) Cities() []City {
	out := make([]City, len(r.cities))
	copy(out, r.cities)

	return out
}
