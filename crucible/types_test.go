package crucible_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/crucible"
)

func TestDirection(t *testing.T) {
	cases := []struct {
		d      crucible.Direction
		name   string
		dx, dy int
		perp   [2]crucible.Direction
	}{
		{crucible.Up, "up", 0, -1, [2]crucible.Direction{crucible.Left, crucible.Right}},
		{crucible.Right, "right", 1, 0, [2]crucible.Direction{crucible.Up, crucible.Down}},
		{crucible.Down, "down", 0, 1, [2]crucible.Direction{crucible.Left, crucible.Right}},
		{crucible.Left, "left", -1, 0, [2]crucible.Direction{crucible.Up, crucible.Down}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.d.String())
			dx, dy := tc.d.Delta()
			assert.Equal(t, tc.dx, dx)
			assert.Equal(t, tc.dy, dy)
			assert.Equal(t, tc.perp, tc.d.Perpendicular())
		})
	}
}

// TestDirection_Invalid documents that values outside the enumeration are a
// programming error rather than a recoverable condition.
func TestDirection_Invalid(t *testing.T) {
	bad := crucible.Direction(4)
	require.Panics(t, func() { _ = bad.String() })
	require.Panics(t, func() { _, _ = bad.Delta() })
	require.Panics(t, func() { _ = bad.Perpendicular() })
}

func TestState_Less(t *testing.T) {
	a := crucible.State{Pos: pt(3, 0), Facing: crucible.Left, Run: 9}
	b := crucible.State{Pos: pt(0, 1), Facing: crucible.Up, Run: 0}
	c := crucible.State{Pos: pt(0, 1), Facing: crucible.Right, Run: 0}
	d := crucible.State{Pos: pt(0, 1), Facing: crucible.Right, Run: 2}

	require.True(t, a.Less(b), "row first")
	require.True(t, b.Less(c), "then facing")
	require.True(t, c.Less(d), "then run")
	require.False(t, d.Less(d))
	require.Equal(t, "(0,1) right×2", d.String())
}

func TestProfile_Validate(t *testing.T) {
	require.NoError(t, crucible.ProfileA.Validate())
	require.NoError(t, crucible.ProfileB.Validate())
	require.NoError(t, crucible.Profile{MinRun: 1, MaxRun: 1}.Validate())
	require.ErrorIs(t, crucible.Profile{MinRun: 0, MaxRun: 3}.Validate(), crucible.ErrBadProfile)
	require.ErrorIs(t, crucible.Profile{MinRun: 5, MaxRun: 4}.Validate(), crucible.ErrBadProfile)
	require.Equal(t, "4..10", crucible.ProfileB.String())
}
