package console

import (
	"fmt"
	"io"

	"github.com/katalvlaran/roadledger/core"
)

const noCities = "No cities recorded yet."

// RenderCities prints "<index>: <name>" per city.
func RenderCities(w io.Writer, v *core.View) {
	fmt.Fprint(w, "\nCities:\n")
	for _, c := range v.Cities() {
		fmt.Fprintf(w, "%d: %s\n", c.Index, c.Name)
	}
}

// RenderRoadMatrix prints the 0/1 road grid with 4-wide columns headed by city index.
func RenderRoadMatrix(w io.Writer, v *core.View) {
	if v.CityCount() == 0 {
		fmt.Fprintln(w, noCities)
		return
	}
	cities := v.Cities()
	fmt.Fprint(w, "\nRoads Adjacency Matrix:\n     ")
	for _, c := range cities {
		fmt.Fprintf(w, "%4d", c.Index)
	}
	fmt.Fprintln(w)
	for i, row := range v.Adjacency() {
		fmt.Fprintf(w, "%4d", cities[i].Index)
		for _, x := range row {
			fmt.Fprintf(w, "%4d", x)
		}
		fmt.Fprintln(w)
	}
}

// RenderBudgetMatrix prints the budget grid with 8-wide, one-decimal columns.
func RenderBudgetMatrix(w io.Writer, v *core.View) {
	if v.CityCount() == 0 {
		fmt.Fprintln(w, noCities)
		return
	}
	cities := v.Cities()
	fmt.Fprint(w, "\nBudgets Adjacency Matrix (in billion RWF):\n     ")
	for _, c := range cities {
		fmt.Fprintf(w, "%8d", c.Index)
	}
	fmt.Fprintln(w)
	for i, row := range v.Budgets() {
		fmt.Fprintf(w, "%4d", cities[i].Index)
		for _, x := range row {
			fmt.Fprintf(w, "%8.1f", x)
		}
		fmt.Fprintln(w)
	}
}

// RenderAll prints cities, the road grid and the budget grid.
func RenderAll(w io.Writer, v *core.View) {
	RenderCities(w, v)
	RenderRoadMatrix(w, v)
	RenderBudgetMatrix(w, v)
}
