package crucible_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/gridgraph"
)

// benchGrid builds a deterministic n×n grid of digits 1..9, the shape of a
// full-size puzzle input.
func benchGrid(b *testing.B, n int) *gridgraph.CostGrid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for y := range values {
		values[y] = make([]int, n)
		for x := range values[y] {
			values[y][x] = 1 + rng.Intn(9)
		}
	}
	g, err := gridgraph.NewCostGrid(values)
	if err != nil {
		b.Fatalf("setup NewCostGrid failed: %v", err)
	}

	return g
}

// BenchmarkSolve_ProfileA measures the unconstrained-turn search on 141×141.
func BenchmarkSolve_ProfileA(b *testing.B) {
	g := benchGrid(b, 141)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := crucible.Solve(g, crucible.ProfileA); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_ProfileB measures the forced-straight search on 141×141.
func BenchmarkSolve_ProfileB(b *testing.B) {
	g := benchGrid(b, 141)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := crucible.Solve(g, crucible.ProfileB); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkExpand measures a single expansion; it should not allocate.
func BenchmarkExpand(b *testing.B) {
	g := benchGrid(b, 141)
	s := crucible.State{Pos: gridgraph.Point{X: 70, Y: 70}, Facing: crucible.Down, Run: 4}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = crucible.Expand(g, s, crucible.ProfileB)
	}
}
