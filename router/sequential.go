package router

import (
	"context"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/grid"
)

// Sequential runs one search per goal on the calling goroutine, in goal order.
type Sequential struct {
	opts Options
}

// NewSequential returns a Sequential router configured by opts.
func NewSequential(opts ...Option) *Sequential {
	return &Sequential{opts: buildOptions(opts)}
}

// FindRoutes implements Router. One arena is reused for all goals.
// The context is checked between goals.
func (s *Sequential) FindRoutes(ctx context.Context, g *grid.Grid, start grid.Point, goals []grid.Point) ([]astar.Result, error) {
	return observe(ctx, KindSequential, s.opts, g, start, goals, func(ctx context.Context, search []astar.Option) ([]astar.Result, error) {
		searcher, err := astar.NewSearcher(g, search...)
		if err != nil {
			return nil, err
		}
		results := make([]astar.Result, len(goals))
		for i, goal := range goals {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if results[i], err = searcher.Search(start, goal); err != nil {
				return nil, err
			}
		}
		return results, nil
	})
}
