// SPDX-License-Identifier: MIT
// Package core_test checks that Views taken concurrently with mutations always
// observe whole operations.

package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/roadledger/core"
	"github.com/stretchr/testify/require"
)

// Concurrency sizes (avoid magic numbers in test bodies).
const (
	NWriterCities = 60
	NReaders      = 8
)

// TestGraph_ViewDuringMutations runs one writer against several readers.
// Readers only collect shapes; assertions happen on the test goroutine.
func TestGraph_ViewDuringMutations(t *testing.T) {
	g := core.NewGraph()

	var wg sync.WaitGroup
	done := make(chan struct{})
	bad := make(chan string, NReaders)

	for r := 0; r < NReaders; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				v := g.View()
				n := v.CityCount()
				if len(v.Adjacency()) != n || len(v.Budgets()) != n {
					bad <- fmt.Sprintf("view with %d cities has %d×? grids", n, len(v.Adjacency()))
					return
				}
			}
		}()
	}

	prev := ""
	for i := 0; i < NWriterCities; i++ {
		name := fmt.Sprintf("City%02d", i)
		_, err := g.AddCity(name)
		require.NoError(t, err)
		if prev != "" {
			require.NoError(t, g.AddRoadWithBudget(prev, name, float64(i)))
		}
		prev = name
	}
	close(done)
	wg.Wait()
	close(bad)

	for msg := range bad {
		t.Fatal(msg)
	}
	require.Equal(t, NWriterCities-1, g.RoadCount())
	requireValid(t, g)
}
