package crucible_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/crucible"
)

func TestSolveAll(t *testing.T) {
	g := mustGrid(t, sampleRows...)
	profiles := []crucible.Profile{crucible.ProfileB, crucible.ProfileA, crucible.ProfileB}

	for _, limit := range []int{0, 1, 2} {
		results, err := crucible.SolveAll(context.Background(), g, profiles, limit)
		require.NoError(t, err)
		require.Len(t, results, 3)
		require.Equal(t, int64(94), results[0].Cost)
		require.Equal(t, int64(102), results[1].Cost)
		require.Equal(t, int64(94), results[2].Cost)
	}
}

func TestSolveAll_Errors(t *testing.T) {
	_, err := crucible.SolveAll(context.Background(), nil, []crucible.Profile{crucible.ProfileA}, 0)
	require.ErrorIs(t, err, crucible.ErrNilGrid)

	g := mustGrid(t, "111", "111", "111")
	_, err = crucible.SolveAll(context.Background(), g, []crucible.Profile{crucible.ProfileA, crucible.ProfileB}, 0)
	require.ErrorIs(t, err, crucible.ErrNoPath)

	_, err = crucible.SolveAll(context.Background(), g, []crucible.Profile{{MinRun: 0, MaxRun: 1}}, 1)
	require.ErrorIs(t, err, crucible.ErrBadProfile)
}

func TestSolveAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := mustGrid(t, sampleRows...)
	_, err := crucible.SolveAll(ctx, g, []crucible.Profile{crucible.ProfileA}, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolveAll_NoProfiles(t *testing.T) {
	g := mustGrid(t, "1")
	results, err := crucible.SolveAll(context.Background(), g, nil, 0)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestSolveAll_ForwardsOptions(t *testing.T) {
	g := mustGrid(t, sampleRows...)
	profiles := []crucible.Profile{crucible.ProfileA, crucible.ProfileB}

	results, err := crucible.SolveAll(context.Background(), g, profiles, 0, crucible.WithReturnPath())
	require.NoError(t, err)
	for i, res := range results {
		requireLegalPath(t, g, profiles[i], res.Path, res.Cost)
	}

	_, err = crucible.SolveAll(context.Background(), g, profiles, 0, crucible.WithMaxCost(95))
	require.ErrorIs(t, err, crucible.ErrNoPath)
}
