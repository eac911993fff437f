package router

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/grid"
)

// Sentinel errors for router construction and validation.
var (
	// ErrUnknownKind indicates an unrecognised router name or Kind value.
	ErrUnknownKind = errors.New("router: unknown router kind")
	// ErrBadWorkers indicates a negative worker limit.
	ErrBadWorkers = errors.New("router: workers must be non-negative")
)

// Router computes one route per goal from start on g.
//
// The returned slice has len(goals) entries and results[i] belongs to
// goals[i]. The error is non-nil only for boundary violations (nil grid,
// out-of-bounds start or goal, invalid options) or context cancellation.
type Router interface {
	FindRoutes(ctx context.Context, g *grid.Grid, start grid.Point, goals []grid.Point) ([]astar.Result, error)
}

// Kind selects a Router implementation.
type Kind int

const (
	// KindSequential selects Sequential.
	KindSequential Kind = iota
	// KindParallel selects Parallel.
	KindParallel
)

// String returns the name used in metrics, traces and ParseKind.
func (k Kind) String() string {
	switch k {
	case KindSequential:
		return "sequential"
	case KindParallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// ParseKind maps "sequential" or "parallel" (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sequential":
		return KindSequential, nil
	case "parallel":
		return KindParallel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// New builds the Router named by kind.
func New(kind Kind, opts ...Option) (Router, error) {
	switch kind {
	case KindSequential:
		return NewSequential(opts...), nil
	case KindParallel:
		return NewParallel(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

// Options configures a Router.
//
// Search  – options forwarded to every astar search.
// Workers – Parallel only: maximum concurrent searches; 0 means one
// goroutine per goal, scheduled by the runtime.
// Logger  – batch diagnostics; also handed to the searches.
type Options struct {
	Search  []astar.Option
	Workers int
	Logger  logrus.FieldLogger
}

// Option represents a functional option for configuring a Router.
type Option func(*Options)

// WithSearchOptions appends astar options applied to every search.
func WithSearchOptions(opts ...astar.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}

// WithWorkers limits how many searches Parallel runs at once.
// Negative values are rejected with ErrBadWorkers by FindRoutes.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with no search overrides, no worker limit
// and the logrus standard logger.
func DefaultOptions() Options {
	return Options{
		Workers: 0,
		Logger:  logrus.StandardLogger(),
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// searchOptions returns the astar options for one batch: the router logger
// first so an explicit astar.WithLogger in Search still wins.
func (o Options) searchOptions() []astar.Option {
	out := make([]astar.Option, 0, len(o.Search)+1)
	out = append(out, astar.WithLogger(o.Logger))
	return append(out, o.Search...)
}

// validate rejects a batch before any search starts.
func validate(g *grid.Grid, start grid.Point, goals []grid.Point) error {
	if g == nil {
		return astar.ErrNilGrid
	}
	if err := g.Check(start); err != nil {
		return fmt.Errorf("router: start: %w", err)
	}
	for i, goal := range goals {
		if err := g.Check(goal); err != nil {
			return fmt.Errorf("router: goal[%d]: %w", i, err)
		}
	}
	return nil
}
