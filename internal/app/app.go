package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/internal/config"
	"github.com/katalvlaran/crucible/internal/ctxlog"
)

// App runs the configured profiles against one grid.
type App struct {
	cfg    *config.Config
	stdin  io.Reader
	outW   io.Writer
	logger *slog.Logger
}

// NewApp builds an App. Answers go to outW, logs to logW; stdin is read when
// cfg.GridPath is "-".
func NewApp(cfg *config.Config, stdin io.Reader, outW, logW io.Writer) *App {
	return &App{
		cfg:    cfg,
		stdin:  stdin,
		outW:   outW,
		logger: newLogger(cfg, logW),
	}
}

// Run loads the grid, solves every profile and prints one "name: cost" line
// per profile in configuration order. With ShowPath, each answer is followed
// by one indented line per step of the route, e.g. "  (1,0) right×1".
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)

	grid, err := a.loadGrid(ctx)
	if err != nil {
		return err
	}

	limit := 0
	if !a.cfg.Parallel {
		limit = 1
	}
	var opts []crucible.Option
	if a.cfg.ShowPath {
		opts = append(opts, crucible.WithReturnPath())
	}
	logger.Debug("Solving profiles.", "count", len(a.cfg.Profiles), "parallel", a.cfg.Parallel, "path", a.cfg.ShowPath)

	start := time.Now()
	results, err := crucible.SolveAll(ctx, grid, a.cfg.CrucibleProfiles(), limit, opts...)
	if err != nil {
		logger.Error("Search failed.", "error", err)
		return fmt.Errorf("solving %s: %w", a.cfg.GridPath, err)
	}
	elapsed := time.Since(start)

	for i, res := range results {
		p := a.cfg.Profiles[i]
		logger.Debug("Profile solved.",
			"profile", p.Name,
			"runs", p.Profile.String(),
			"cost", res.Cost,
			"settled", res.Settled,
			"popped", res.Popped,
			"pushed", res.Pushed,
		)
		if _, err := fmt.Fprintf(a.outW, "%s: %d\n", p.Name, res.Cost); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		if err := a.writePath(res.Path); err != nil {
			return err
		}
	}
	logger.Info("All profiles solved.", "count", len(results), "elapsed", elapsed)

	return nil
}

// writePath prints the steps of a route, skipping the seed state at the
// origin. It writes nothing when path reconstruction was not requested.
func (a *App) writePath(path []crucible.State) error {
	if len(path) < 2 {
		return nil
	}
	for _, s := range path[1:] {
		if _, err := fmt.Fprintf(a.outW, "  %v\n", s); err != nil {
			return fmt.Errorf("writing path: %w", err)
		}
	}

	return nil
}

func (a *App) loadGrid(ctx context.Context) (*gridgraph.CostGrid, error) {
	logger := ctxlog.FromContext(ctx)

	var r io.Reader = a.stdin
	if a.cfg.GridPath != "-" {
		f, err := os.Open(a.cfg.GridPath)
		if err != nil {
			return nil, fmt.Errorf("opening grid: %w", err)
		}
		defer f.Close()
		r = f
	}

	grid, err := gridgraph.Read(r)
	if err != nil {
		logger.Error("Grid rejected.", "path", a.cfg.GridPath, "error", err)
		return nil, fmt.Errorf("loading grid %s: %w", a.cfg.GridPath, err)
	}
	logger.Debug("Grid loaded.", "path", a.cfg.GridPath, "width", grid.Width, "height", grid.Height)

	return grid, nil
}
