package router_test

import (
	"context"
	"math/rand"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/router"
)

// routers returns both implementations configured with the same options.
func routers(opts ...router.Option) map[string]router.Router {
	return map[string]router.Router{
		"Sequential": router.NewSequential(opts...),
		"Parallel":   router.NewParallel(opts...),
	}
}

func quietLogger() router.Option {
	logger, _ := logtest.NewNullLogger()
	return router.WithLogger(logger)
}

func corridor(t *testing.T, n int) *grid.Grid {
	t.Helper()
	row := make([]int, n)
	for i := range row {
		row[i] = 1
	}
	g, err := grid.NewGrid([][]int{row})
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// Ordering and isolation
//----------------------------------------------------------------------------//

// TestFindRoutes_OrderMatchesSequential checks results[i] belongs to goals[i]
// and that both routers agree exactly.
func TestFindRoutes_OrderMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g, err := grid.NewRandom(30, 30, rng)
	require.NoError(t, err)
	cells := g.Shuffle(rng)
	goals, start := cells[:12], cells[12]

	ctx := context.Background()
	seq, err := router.NewSequential(quietLogger()).FindRoutes(ctx, g, start, goals)
	require.NoError(t, err)
	par, err := router.NewParallel(quietLogger()).FindRoutes(ctx, g, start, goals)
	require.NoError(t, err)

	require.Len(t, seq, len(goals))
	require.Len(t, par, len(goals))
	for i, goal := range goals {
		assert.Equal(t, goal, par[i].Goal, "result %d", i)
		assert.True(t, par[i].Found(), "result %d", i)
		want, err := astar.FindPath(g, start, goal)
		require.NoError(t, err)
		assert.Equal(t, want, par[i], "result %d", i)
	}
	assert.Equal(t, seq, par)
}

// TestParallel_RepeatedGoalIsolation runs the same goal many times at once;
// every result must be identical and valid.
func TestParallel_RepeatedGoalIsolation(t *testing.T) {
	g, err := grid.NewRandom(25, 25, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	start, goal := grid.Point{X: 0, Y: 24}, grid.Point{X: 24, Y: 0}

	const n = 32
	goals := make([]grid.Point, n)
	for i := range goals {
		goals[i] = goal
	}

	want, err := astar.FindPath(g, start, goal)
	require.NoError(t, err)
	require.True(t, want.Found())

	for _, workers := range []int{0, 1, 4} {
		results, err := router.NewParallel(quietLogger(), router.WithWorkers(workers)).
			FindRoutes(context.Background(), g, start, goals)
		require.NoError(t, err)
		require.Len(t, results, n)
		for i, res := range results {
			require.Equal(t, want, res, "workers=%d result %d", workers, i)
		}
	}
}

//----------------------------------------------------------------------------//
// Per-goal failures do not fail the batch
//----------------------------------------------------------------------------//

func TestFindRoutes_MixedOutcomes(t *testing.T) {
	g := corridor(t, 10)
	start := grid.Point{X: 0, Y: 0}
	goals := []grid.Point{{X: 2, Y: 0}, {X: 9, Y: 0}, {X: 0, Y: 0}, {X: 3, Y: 0}}

	for name, r := range routers(quietLogger(), router.WithSearchOptions(astar.WithMaxPathLength(3))) {
		t.Run(name, func(t *testing.T) {
			results, err := r.FindRoutes(context.Background(), g, start, goals)
			require.NoError(t, err)
			require.Len(t, results, 4)

			assert.Equal(t, astar.StatusFound, results[0].Status)
			assert.Len(t, results[0].Route, 2)
			assert.Equal(t, astar.StatusPathTooLong, results[1].Status)
			assert.Nil(t, results[1].Route)
			assert.Equal(t, astar.StatusFound, results[2].Status)
			assert.Empty(t, results[2].Route)
			assert.Equal(t, astar.StatusFound, results[3].Status)
			assert.Equal(t, astar.Route{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, results[3].Route)
		})
	}
}

func TestFindRoutes_IterationCapPerGoal(t *testing.T) {
	g, err := grid.NewGrid([][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})
	require.NoError(t, err)
	logger, hook := logtest.NewNullLogger()
	start := grid.Point{X: 0, Y: 0}
	goals := []grid.Point{{X: 1, Y: 0}, {X: 2, Y: 2}}

	for name, r := range routers(router.WithLogger(logger), router.WithSearchOptions(astar.WithMaxIterations(1))) {
		t.Run(name, func(t *testing.T) {
			hook.Reset()
			results, err := r.FindRoutes(context.Background(), g, start, goals)
			require.NoError(t, err)

			assert.Equal(t, astar.StatusFound, results[0].Status)
			assert.Equal(t, astar.Route{{X: 1, Y: 0}}, results[0].Route)
			assert.Equal(t, astar.StatusUnreachable, results[1].Status)
			assert.True(t, results[0].CapReached)
			assert.True(t, results[1].CapReached)

			capped := 0
			for _, e := range hook.AllEntries() {
				if e.Message == "astar: iteration cap reached" {
					capped++
				}
			}
			assert.Equal(t, 2, capped)
		})
	}
}

func TestFindRoutes_EmptyGoals(t *testing.T) {
	g := corridor(t, 3)
	for name, r := range routers(quietLogger()) {
		t.Run(name, func(t *testing.T) {
			results, err := r.FindRoutes(context.Background(), g, grid.Point{}, nil)
			require.NoError(t, err)
			assert.NotNil(t, results)
			assert.Empty(t, results)
		})
	}
}

//----------------------------------------------------------------------------//
// Boundary violations abort before searching
//----------------------------------------------------------------------------//

func TestFindRoutes_Validation(t *testing.T) {
	g := corridor(t, 4)
	ok := grid.Point{X: 1, Y: 0}

	cases := []struct {
		name  string
		opts  []router.Option
		g     *grid.Grid
		start grid.Point
		goals []grid.Point
		err   error
		msg   string
	}{
		{"NilGrid", nil, nil, ok, []grid.Point{ok}, astar.ErrNilGrid, ""},
		{"StartOutOfBounds", nil, g, grid.Point{X: 4, Y: 0}, []grid.Point{ok}, grid.ErrOutOfBounds, "router: start"},
		{"GoalOutOfBounds", nil, g, ok, []grid.Point{ok, {X: 0, Y: 1}}, grid.ErrOutOfBounds, "router: goal[1]"},
		{"NegativeWorkers", []router.Option{router.WithWorkers(-1)}, g, ok, []grid.Point{ok}, router.ErrBadWorkers, ""},
		{"BadSearchOptions", []router.Option{router.WithSearchOptions(astar.WithMaxIterations(0))}, g, ok, []grid.Point{ok}, astar.ErrBadMaxIterations, ""},
	}
	for _, tc := range cases {
		for name, r := range routers(append(tc.opts, quietLogger())...) {
			t.Run(tc.name+"/"+name, func(t *testing.T) {
				results, err := r.FindRoutes(context.Background(), tc.g, tc.start, tc.goals)
				require.ErrorIs(t, err, tc.err)
				assert.Nil(t, results)
				if tc.msg != "" {
					assert.Contains(t, err.Error(), tc.msg)
				}
			})
		}
	}
}

func TestFindRoutes_Cancelled(t *testing.T) {
	g := corridor(t, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, r := range routers(quietLogger()) {
		t.Run(name, func(t *testing.T) {
			_, err := r.FindRoutes(ctx, g, grid.Point{}, []grid.Point{{X: 4, Y: 0}, {X: 2, Y: 0}})
			require.ErrorIs(t, err, context.Canceled)
		})
	}
}

//----------------------------------------------------------------------------//
// Kind selection
//----------------------------------------------------------------------------//

func TestParseKindAndNew(t *testing.T) {
	k, err := router.ParseKind("Parallel")
	require.NoError(t, err)
	assert.Equal(t, router.KindParallel, k)
	assert.Equal(t, "parallel", k.String())

	k, err = router.ParseKind(" sequential ")
	require.NoError(t, err)
	assert.Equal(t, router.KindSequential, k)

	_, err = router.ParseKind("jobs")
	assert.ErrorIs(t, err, router.ErrUnknownKind)

	r, err := router.New(router.KindParallel)
	require.NoError(t, err)
	assert.IsType(t, &router.Parallel{}, r)
	r, err = router.New(router.KindSequential)
	require.NoError(t, err)
	assert.IsType(t, &router.Sequential{}, r)

	_, err = router.New(router.Kind(9))
	assert.ErrorIs(t, err, router.ErrUnknownKind)
	assert.Equal(t, "unknown", router.Kind(9).String())
}
