package core_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/roadledger/core"
	"github.com/stretchr/testify/require"
)

// Sizes for the randomized invariant run (avoid magic numbers in test bodies).
const (
	NRandomOps    = 2000
	NRandomCities = 12
	RandomSeed    = 20240601
)

// TestGraph_InvariantsUnderRandomOps applies a deterministic pseudo-random mix
// of valid and invalid operations and checks every invariant after each one.
// Rejected operations must leave the state untouched; adding a city must raise
// the count by exactly one and assign old max + 1.
func TestGraph_InvariantsUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(RandomSeed))
	g := core.NewGraph()

	name := func() string { return fmt.Sprintf("C%d", rng.Intn(NRandomCities)) }

	for step := 0; step < NRandomOps; step++ {
		before := capture(g)
		count := g.CityCount()

		var err error
		switch rng.Intn(5) {
		case 0:
			var c core.City
			c, err = g.AddCity(name())
			if err == nil {
				require.Equal(t, count+1, g.CityCount(), "step %d", step)
				require.Equal(t, count+1, c.Index, "step %d", step)
			}
		case 1:
			err = g.AddRoad(name(), name())
		case 2:
			err = g.SetBudget(name(), name(), float64(rng.Intn(200)-20)/2)
		case 3:
			err = g.RenameCity(name(), name())
		case 4:
			_, err = g.FindByIndex(rng.Intn(NRandomCities+2) - 1)
		}

		if err != nil {
			requireUnchanged(t, g, before, fmt.Sprintf("step %d", step))
		}
		require.NoError(t, g.Validate(), "step %d", step)
	}
}
