package astar

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridroute/grid"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrBadMaxIterations indicates MaxIterations was set to zero or below.
	ErrBadMaxIterations = errors.New("astar: MaxIterations must be positive")

	// ErrBadMaxPathLength indicates MaxPathLength was set to zero or below.
	ErrBadMaxPathLength = errors.New("astar: MaxPathLength must be positive")

	// ErrUnreachable is the error form of StatusUnreachable.
	ErrUnreachable = errors.New("astar: goal unreachable")

	// ErrPathTooLong is the error form of StatusPathTooLong.
	ErrPathTooLong = errors.New("astar: path exceeds maximum length")
)

// Defaults used by DefaultOptions.
const (
	DefaultMaxIterations = 100000
	DefaultMaxPathLength = 1000
)

// Options configures a search.
//
// MaxIterations – bound on the outer select/expand loop. Must be > 0.
// MaxPathLength – capacity of the route buffer. Must be > 0.
// Logger        – receives the iteration-cap diagnostic.
type Options struct {
	MaxIterations int
	MaxPathLength int
	Logger        logrus.FieldLogger
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithMaxIterations sets the iteration cap.
// Non-positive values are rejected with ErrBadMaxIterations when the search starts.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithMaxPathLength sets the route buffer capacity.
// Non-positive values are rejected with ErrBadMaxPathLength when the search starts.
func WithMaxPathLength(n int) Option {
	return func(o *Options) {
		o.MaxPathLength = n
	}
}

// WithLogger sets the diagnostic logger. A nil logger keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with MaxIterations=100000,
// MaxPathLength=1000 and the logrus standard logger.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		MaxPathLength: DefaultMaxPathLength,
		Logger:        logrus.StandardLogger(),
	}
}

// NewOptions applies opts over DefaultOptions and validates the result.
func NewOptions(opts ...Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxIterations <= 0 {
		return cfg, ErrBadMaxIterations
	}
	if cfg.MaxPathLength <= 0 {
		return cfg, ErrBadMaxPathLength
	}
	return cfg, nil
}

// Status is the per-goal outcome of a search.
type Status int

const (
	// StatusFound means Result.Route holds a route to the goal.
	StatusFound Status = iota
	// StatusUnreachable means the goal was never assigned a parent.
	StatusUnreachable
	// StatusPathTooLong means the route would not fit in MaxPathLength entries.
	StatusPathTooLong
)

// String returns a lower-case name for s.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusUnreachable:
		return "unreachable"
	case StatusPathTooLong:
		return "path_too_long"
	default:
		return "unknown"
	}
}

// Route is the ordered list of cells from start to goal, start excluded and
// goal included. An empty Route means start == goal.
type Route []grid.Point

// Result contains the outcome of one search.
type Result struct {
	Goal       grid.Point // goal this result belongs to
	Route      Route      // nil unless Status == StatusFound
	Cost       int        // g of the goal node: per-cell costs plus one per step
	Iterations int        // select/expand rounds executed
	CapReached bool       // the loop stopped at MaxIterations
	Status     Status
}

// Found reports whether r carries a route.
func (r Result) Found() bool {
	return r.Status == StatusFound
}

// Err returns nil for StatusFound, ErrUnreachable or ErrPathTooLong otherwise.
func (r Result) Err() error {
	switch r.Status {
	case StatusFound:
		return nil
	case StatusPathTooLong:
		return ErrPathTooLong
	default:
		return ErrUnreachable
	}
}
