// SPDX-License-Identifier: MIT
// Package core_test contains fixtures and assertion helpers for core tests.

package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/roadledger/core"
	"github.com/stretchr/testify/require"
)

// Common city names used across core tests.
const (
	Kigali    = "Kigali"
	Huye      = "Huye"
	Muhanga   = "Muhanga"
	Musanze   = "Musanze"
	Nyagatare = "Nyagatare"
	Rubavu    = "Rubavu"
	Rusizi    = "Rusizi"

	Missing = "Atlantis"
)

// state is a comparable capture of everything a Graph exposes.
type state struct {
	Cities    []core.City
	Adjacency [][]int
	Budgets   [][]float64
	Roads     []core.Road
}

// capture takes a full snapshot of g for before/after comparisons.
func capture(g *core.Graph) state {
	v := g.View()
	return state{
		Cities:    v.Cities(),
		Adjacency: v.Adjacency(),
		Budgets:   v.Budgets(),
		Roads:     v.Roads(),
	}
}

// requireUnchanged fails if g differs from before.
func requireUnchanged(t *testing.T, g *core.Graph, before state, msg string) {
	t.Helper()
	if diff := cmp.Diff(before, capture(g)); diff != "" {
		t.Fatalf("%s: state changed (-before +after):\n%s", msg, diff)
	}
}

// requireValid fails if any Graph invariant is broken.
func requireValid(t *testing.T, g *core.Graph) {
	t.Helper()
	require.NoError(t, g.Validate())
}

// newGraph builds a graph holding the given cities in order.
func newGraph(t *testing.T, names ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddCities(names...)
	require.NoError(t, err)

	return g
}

// seeded returns a fresh seeded graph.
func seeded(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewSeededGraph()
	require.NoError(t, err)

	return g
}
