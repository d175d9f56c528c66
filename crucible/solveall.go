package crucible

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/gridgraph"
)

// SolveAll runs Search once per profile on the shared, read-only grid g and
// returns the results in profile order. Each search owns its own Frontier and
// SettledSet, so they run concurrently; limit caps the number of searches in
// flight (limit ≤ 0 means no cap, 1 means sequential).
//
// opts are applied to every search; hooks passed through WithOnPop or
// WithOnFinalize must therefore be safe for concurrent use unless limit is 1.
//
// A search that has started runs to completion; ctx only prevents searches
// that have not started yet. The first error wins.
func SolveAll(ctx context.Context, g *gridgraph.CostGrid, profiles []Profile, limit int, opts ...Option) ([]*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	results := make([]*Result, len(profiles))
	eg, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, p := range profiles {
		i, p := i, p
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Search(g, p, opts...)
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
