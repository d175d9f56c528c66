package crucible

import (
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Expand returns the legal successors of s under profile p on grid g.
// Only out[:n] is meaningful; n is between 0 and 3.
//
// Rules, applied independently:
//  1. Straight: if s.Run < p.MaxRun, one cell forward in s.Facing with Run+1.
//  2. Turn: if s.Run ≥ p.MinRun, or s.Run == 0 (nothing committed yet),
//     one cell into each perpendicular direction with Run = 1.
//
// Candidates outside the grid are dropped. Each successor's Cost is the cost
// of the cell it enters.
//
// Complexity: O(1), no heap allocation.
func Expand(g *gridgraph.CostGrid, s State, p Profile) (out [3]Successor, n int) {
	if s.Run < p.MaxRun {
		if next, ok := advance(g, s.Pos, s.Facing); ok {
			out[n] = Successor{
				State: State{Pos: next, Facing: s.Facing, Run: s.Run + 1},
				Cost:  costAt(g, next),
			}
			n++
		}
	}

	if s.Run >= p.MinRun || s.Run == 0 {
		for _, d := range s.Facing.Perpendicular() {
			if next, ok := advance(g, s.Pos, d); ok {
				out[n] = Successor{
					State: State{Pos: next, Facing: d, Run: 1},
					Cost:  costAt(g, next),
				}
				n++
			}
		}
	}

	return out, n
}

// advance steps one cell from p in direction d, reporting false when the
// target lies outside g.
func advance(g *gridgraph.CostGrid, p gridgraph.Point, d Direction) (gridgraph.Point, bool) {
	dx, dy := d.Delta()
	next := gridgraph.Point{X: p.X + dx, Y: p.Y + dy}

	return next, g.InBounds(next.X, next.Y)
}

// costAt reads a cell that advance has already bounds-checked. A failure here
// means Expand produced an off-grid state, which is a bug, so it panics.
func costAt(g *gridgraph.CostGrid, p gridgraph.Point) int {
	c, err := g.CostAt(p.X, p.Y)
	if err != nil {
		panic(fmt.Sprintf("crucible: %v at (%d,%d)", err, p.X, p.Y))
	}

	return c
}
