package router

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/grid"
)

var tracer = otel.Tracer("github.com/katalvlaran/gridroute/router")

var (
	// searchesTotal counts finished searches by router and outcome.
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridroute_searches_total",
		Help: "Total route searches by router and result status",
	}, []string{"router", "status"})

	// iterationCapTotal counts searches that stopped at MaxIterations.
	iterationCapTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridroute_search_iteration_cap_total",
		Help: "Total searches that reached the iteration cap",
	}, []string{"router"})

	// batchErrors counts batches rejected or cancelled.
	batchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridroute_batch_errors_total",
		Help: "Total FindRoutes batches that returned an error",
	}, []string{"router"})

	batchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridroute_batch_duration_seconds",
		Help:    "FindRoutes batch duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3.3s
	}, []string{"router"})
)

// batchFunc runs the searches of one validated batch.
type batchFunc func(ctx context.Context, search []astar.Option) ([]astar.Result, error)

// observe validates a batch, runs it inside a span and records metrics and
// a debug log entry for the outcome.
func observe(
	ctx context.Context,
	kind Kind,
	opts Options,
	g *grid.Grid,
	start grid.Point,
	goals []grid.Point,
	run batchFunc,
) ([]astar.Result, error) {
	ctx, span := tracer.Start(ctx, "router.FindRoutes", trace.WithAttributes(
		attribute.String("router", kind.String()),
		attribute.Int("goals", len(goals)),
		attribute.String("start", start.String()),
	))
	defer span.End()

	began := time.Now()
	results, err := func() ([]astar.Result, error) {
		if err := validate(g, start, goals); err != nil {
			return nil, err
		}
		if opts.Workers < 0 {
			return nil, ErrBadWorkers
		}
		search := opts.searchOptions()
		if _, err := astar.NewOptions(search...); err != nil {
			return nil, err
		}
		return run(ctx, search)
	}()
	elapsed := time.Since(began)
	batchDuration.WithLabelValues(kind.String()).Observe(elapsed.Seconds())

	if err != nil {
		batchErrors.WithLabelValues(kind.String()).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		opts.Logger.WithFields(logrus.Fields{
			"router": kind.String(),
			"goals":  len(goals),
		}).WithError(err).Debug("router: batch failed")
		return nil, err
	}

	counts := make(map[astar.Status]int, 3)
	capped := 0
	for _, res := range results {
		counts[res.Status]++
		searchesTotal.WithLabelValues(kind.String(), res.Status.String()).Inc()
		if res.CapReached {
			capped++
			iterationCapTotal.WithLabelValues(kind.String()).Inc()
		}
	}
	span.SetAttributes(
		attribute.Int("found", counts[astar.StatusFound]),
		attribute.Int("unreachable", counts[astar.StatusUnreachable]),
		attribute.Int("path_too_long", counts[astar.StatusPathTooLong]),
		attribute.Int("iteration_cap", capped),
	)
	span.SetStatus(codes.Ok, "")
	opts.Logger.WithFields(logrus.Fields{
		"router":      kind.String(),
		"goals":       len(goals),
		"found":       counts[astar.StatusFound],
		"unreachable": counts[astar.StatusUnreachable],
		"too_long":    counts[astar.StatusPathTooLong],
		"elapsed":     elapsed,
	}).Debug("router: batch finished")

	return results, nil
}
