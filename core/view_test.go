package core_test

import (
	"testing"

	"github.com/katalvlaran/roadledger/core"
	"github.com/stretchr/testify/require"
)

// TestView_Isolation checks a View is unaffected by later mutations and by
// callers editing the slices it returns.
func TestView_Isolation(t *testing.T) {
	g := newGraph(t, Kigali, Huye)
	v := g.View()

	require.NoError(t, g.AddRoadWithBudget(Kigali, Huye, 9))
	_, err := g.AddCity(Rusizi)
	require.NoError(t, err)

	require.Equal(t, 2, v.CityCount())
	require.Empty(t, v.Roads())
	require.Equal(t, [][]int{{0, 0}, {0, 0}}, v.Adjacency())

	cities := v.Cities()
	cities[0].Name = "changed"
	budgets := v.Budgets()
	budgets[0][1] = 42
	require.Equal(t, Kigali, v.Cities()[0].Name)
	require.Equal(t, 0.0, v.Budgets()[0][1])
}

// TestView_RoadNumbering shows numbers follow the row-major scan, so an
// insertion earlier in the scan renumbers later roads.
func TestView_RoadNumbering(t *testing.T) {
	g := newGraph(t, Kigali, Huye, Muhanga)
	require.NoError(t, g.AddRoad(Huye, Muhanga))
	require.Equal(t, "Huye-Muhanga", g.Roads()[0].Name())

	require.NoError(t, g.AddRoad(Muhanga, Kigali))
	roads := g.Roads()
	require.Len(t, roads, 2)
	require.Equal(t, core.Road{
		Number: 1,
		From:   core.City{Index: 1, Name: Kigali},
		To:     core.City{Index: 3, Name: Muhanga},
	}, roads[0])
	require.Equal(t, 2, roads[1].Number)
	require.Equal(t, "Huye-Muhanga", roads[1].Name())
}

func TestView_Empty(t *testing.T) {
	v := core.NewGraph().View()
	require.Equal(t, 0, v.CityCount())
	require.Empty(t, v.Cities())
	require.Empty(t, v.Roads())
	require.Empty(t, v.Adjacency())
	require.Empty(t, v.Budgets())
}
