package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roadledger/core"
)

// ExampleGraph builds a two-city graph, connects it and budgets the road.
func ExampleGraph() {
	g := core.NewGraph()
	k, _ := g.AddCity("Kigali")
	h, _ := g.AddCity("Huye")
	fmt.Println(k.Index, h.Index)

	_ = g.AddRoad("Kigali", "Huye")
	_ = g.SetBudget("Kigali", "Huye", 28.6)

	for _, r := range g.Roads() {
		fmt.Printf("%d. %s %g\n", r.Number, r.Name(), r.Budget)
	}

	err := g.AddRoad("Kigali", "Kigali")
	fmt.Println(errors.Is(err, core.ErrSelfLoop))

	// Output:
	// 1 2
	// 1. Kigali-Huye 28.6
	// true
}

// ExampleNewSeededGraph shows the fixed starting data set.
func ExampleNewSeededGraph() {
	g, err := core.NewSeededGraph()
	if err != nil {
		panic(err)
	}
	c, _ := g.FindByIndex(1)
	fmt.Println(c.Name, g.CityCount(), g.RoadCount())

	// Output:
	// Kigali 7 9
}
