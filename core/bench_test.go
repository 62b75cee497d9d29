// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/roadledger/core"
)

// NBenchCities is the graph size used by the read benchmarks.
const NBenchCities = 200

func benchGraph(b *testing.B) *core.Graph {
	b.Helper()
	g := core.NewGraph(core.WithCapacity(NBenchCities))
	for i := 0; i < NBenchCities; i++ {
		if _, err := g.AddCity(fmt.Sprintf("C%d", i)); err != nil {
			b.Fatal(err)
		}
		if i > 0 {
			if err := g.AddRoadWithBudget(fmt.Sprintf("C%d", i-1), fmt.Sprintf("C%d", i), float64(i)); err != nil {
				b.Fatal(err)
			}
		}
	}

	return g
}

// BenchmarkAddCity measures city insertion including the O(N²) grid growth.
func BenchmarkAddCity(b *testing.B) {
	names := make([]string, NBenchCities)
	for i := range names {
		names[i] = fmt.Sprintf("C%d", i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := core.NewGraph()
		_, _ = g.AddCities(names...)
	}
}

// BenchmarkSetBudget measures the name resolution + symmetric write path.
func BenchmarkSetBudget(b *testing.B) {
	g := benchGraph(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.SetBudget("C10", "C11", float64(i))
	}
}

// BenchmarkViewRoads measures snapshot copy plus road enumeration.
func BenchmarkViewRoads(b *testing.B) {
	g := benchGraph(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.View().Roads()
	}
}
