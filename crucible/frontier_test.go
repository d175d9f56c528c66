package crucible_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/crucible"
)

func TestFrontier_Empty(t *testing.T) {
	f := crucible.NewFrontier(0)
	_, ok := f.PopMin()
	require.False(t, ok)
	require.Zero(t, f.Len())

	f = crucible.NewFrontier(-5)
	require.Zero(t, f.Len())
}

// TestFrontier_Order pushes shuffled entries and expects them back sorted by
// cost, then by State.Less.
func TestFrontier_Order(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var entries []crucible.Entry
	for i := 0; i < 200; i++ {
		entries = append(entries, crucible.Entry{
			State: crucible.State{
				Pos:    pt(rng.Intn(5), rng.Intn(5)),
				Facing: crucible.Direction(rng.Intn(4)),
				Run:    rng.Intn(4),
			},
			Cost: int64(rng.Intn(20)),
		})
	}

	f := crucible.NewFrontier(len(entries))
	for _, e := range entries {
		f.Push(e.State, e.Cost)
	}
	require.Equal(t, len(entries), f.Len())

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Cost != entries[j].Cost {
			return entries[i].Cost < entries[j].Cost
		}
		return entries[i].State.Less(entries[j].State)
	})
	for i := range entries {
		e, ok := f.PopMin()
		require.True(t, ok)
		require.Equal(t, entries[i], e, "pop %d", i)
	}
	_, ok := f.PopMin()
	require.False(t, ok)
}

func TestFrontier_TieBreak(t *testing.T) {
	f := crucible.NewFrontier(4)
	f.Push(crucible.State{Pos: pt(1, 0), Facing: crucible.Down, Run: 1}, 3)
	f.Push(crucible.State{Pos: pt(0, 1), Facing: crucible.Right, Run: 1}, 3)
	f.Push(crucible.State{Pos: pt(1, 0), Facing: crucible.Right, Run: 2}, 3)
	f.Push(crucible.State{Pos: pt(1, 0), Facing: crucible.Right, Run: 1}, 3)

	var got []crucible.State
	for f.Len() > 0 {
		e, _ := f.PopMin()
		got = append(got, e.State)
	}
	require.Equal(t, []crucible.State{
		{Pos: pt(1, 0), Facing: crucible.Right, Run: 1},
		{Pos: pt(1, 0), Facing: crucible.Right, Run: 2},
		{Pos: pt(1, 0), Facing: crucible.Down, Run: 1},
		{Pos: pt(0, 1), Facing: crucible.Right, Run: 1},
	}, got)
}
