// File: seed.go
// Role: Fixed seed data set loaded before any operator command.

package core

// SeedRoad is one seeded road with its budget in billion RWF.
type SeedRoad struct {
	From, To string
	Budget   float64
}

// SeedCities are the cities every session starts with, in index order.
var SeedCities = []string{
	"Kigali", "Huye", "Muhanga", "Musanze",
	"Nyagatare", "Rubavu", "Rusizi",
}

// SeedRoads are the roads every session starts with.
var SeedRoads = []SeedRoad{
	{"Kigali", "Muhanga", 28.6},
	{"Kigali", "Musanze", 28.6},
	{"Kigali", "Nyagatare", 70.84},
	{"Muhanga", "Huye", 56.7},
	{"Musanze", "Rubavu", 33.7},
	{"Huye", "Rusizi", 80.96},
	{"Muhanga", "Rusizi", 117.5},
	{"Musanze", "Nyagatare", 96.14},
	{"Muhanga", "Musanze", 66.3},
}

// Seed loads SeedCities and SeedRoads into g.
// It fails on the first rejected city or road, which only happens when g
// already holds some of the seed data.
func Seed(g *Graph) error {
	if _, err := g.AddCities(SeedCities...); err != nil {
		return err
	}
	for _, r := range SeedRoads {
		if err := g.AddRoadWithBudget(r.From, r.To, r.Budget); err != nil {
			return err
		}
	}

	return nil
}

// NewSeededGraph returns a Graph holding the seed data set.
func NewSeededGraph(opts ...GraphOption) (*Graph, error) {
	g := NewGraph(append([]GraphOption{WithCapacity(len(SeedCities))}, opts...)...)
	if err := Seed(g); err != nil {
		return nil, err
	}

	return g, nil
}
