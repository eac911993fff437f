package router

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/grid"
)

// Parallel runs every goal's search as an independent goroutine.
//
// Each unit allocates its own arena and writes only results[i]; the grid is
// shared read-only. Results are indexed by goal position, so completion order
// never affects output order.
type Parallel struct {
	opts Options
}

// NewParallel returns a Parallel router configured by opts.
func NewParallel(opts ...Option) *Parallel {
	return &Parallel{opts: buildOptions(opts)}
}

// FindRoutes implements Router. It returns only after every unit finished.
// Units that have not started when ctx is cancelled are skipped and the
// batch returns ctx.Err().
func (p *Parallel) FindRoutes(ctx context.Context, g *grid.Grid, start grid.Point, goals []grid.Point) ([]astar.Result, error) {
	return observe(ctx, KindParallel, p.opts, g, start, goals, func(ctx context.Context, search []astar.Option) ([]astar.Result, error) {
		results := make([]astar.Result, len(goals))
		eg, egCtx := errgroup.WithContext(ctx)
		if p.opts.Workers > 0 {
			eg.SetLimit(p.opts.Workers)
		}
		for i, goal := range goals {
			i, goal := i, goal
			eg.Go(func() error {
				if err := egCtx.Err(); err != nil {
					return err
				}
				res, err := astar.FindPath(g, start, goal, search...)
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
	})
}
