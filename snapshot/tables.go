package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/roadledger/core"
)

// Column layouts of the two tables.
const (
	cityRowFormat = "%-8s%-20s\n"
	roadRowFormat = "%-5s%-25s%-10s\n"
)

// Default file names written by FileSink.
const (
	CitiesFile = "cities.txt"
	RoadsFile  = "roads.txt"
)

// FormatBudget renders a budget the way the tables print it: six significant
// digits, trailing zeros dropped (28.6, 70.84, 0).
func FormatBudget(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// RoadNumber renders a road number with its trailing dot ("1.").
func RoadNumber(n int) string {
	return strconv.Itoa(n) + "."
}

// WriteCities writes the city table for v to w.
func WriteCities(w io.Writer, v *core.View) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, cityRowFormat, "Index", "City_Name")
	for _, c := range v.Cities() {
		fmt.Fprintf(bw, cityRowFormat, strconv.Itoa(c.Index), c.Name)
	}

	return bw.Flush()
}

// WriteRoads writes the road table for v to w.
func WriteRoads(w io.Writer, v *core.View) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, roadRowFormat, "Nbr", "Road", "Budget")
	for _, r := range v.Roads() {
		fmt.Fprintf(bw, roadRowFormat, RoadNumber(r.Number), r.Name(), FormatBudget(r.Budget))
	}

	return bw.Flush()
}
