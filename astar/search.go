package astar

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridroute/grid"
)

// directions lists the four moves in expansion order: down, up, left, right.
// The order decides which parent wins among equal candidates.
var directions = [4]grid.Point{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// FindPath computes one route from start to goal on g.
//
// The returned error is reserved for boundary violations: ErrNilGrid,
// grid.ErrOutOfBounds for start or goal, and invalid options. Whether a route
// exists is reported through Result.Status.
//
// start == goal yields StatusFound with an empty route and zero cost.
//
// Complexity: O(W·H · iterations) time, O(W·H) memory.
func FindPath(g *grid.Grid, start, goal grid.Point, opts ...Option) (Result, error) {
	s, err := NewSearcher(g, opts...)
	if err != nil {
		return Result{}, err
	}
	return s.Search(start, goal)
}

// Searcher runs searches on one grid, reusing a single SearchState between
// calls. A Searcher is not safe for concurrent use; give each goroutine its own.
type Searcher struct {
	g     *grid.Grid
	opts  Options
	state *SearchState
}

// NewSearcher validates opts and allocates an arena sized to g.
func NewSearcher(g *grid.Grid, opts ...Option) (*Searcher, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg, err := NewOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &Searcher{g: g, opts: cfg, state: NewSearchState(g.Len())}, nil
}

// Options returns the validated configuration of s.
func (s *Searcher) Options() Options { return s.opts }

// Search computes one route from start to goal, resetting the arena first.
// See FindPath for the error contract.
func (s *Searcher) Search(start, goal grid.Point) (Result, error) {
	if err := s.g.Check(start); err != nil {
		return Result{}, fmt.Errorf("astar: start: %w", err)
	}
	if err := s.g.Check(goal); err != nil {
		return Result{}, fmt.Errorf("astar: goal: %w", err)
	}
	if start == goal {
		return Result{Goal: goal, Route: Route{}, Status: StatusFound}, nil
	}

	r := &runner{
		g:        s.g,
		opts:     s.opts,
		nodes:    s.state.nodes,
		start:    start,
		goal:     goal,
		startIdx: s.g.Index(start),
		goalIdx:  s.g.Index(goal),
	}
	s.state.reset()
	r.init()

	res := Result{Goal: goal}
	res.Iterations, res.CapReached = r.process()
	if res.CapReached {
		s.opts.Logger.WithFields(logrus.Fields{
			"start":      start.String(),
			"goal":       goal.String(),
			"iterations": res.Iterations,
		}).Info("astar: iteration cap reached")
	}

	if r.nodes[r.goalIdx].parent == noParent {
		res.Status = StatusUnreachable
		return res, nil
	}
	route, ok := r.reconstruct()
	if !ok {
		res.Status = StatusPathTooLong
		return res, nil
	}
	res.Route = route
	res.Cost = r.nodes[r.goalIdx].g
	res.Status = StatusFound

	return res, nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g        *grid.Grid // read-only
	opts     Options
	nodes    []node // arena, exclusively owned for the duration of the search
	start    grid.Point
	goal     grid.Point
	startIdx int
	goalIdx  int
}

// init opens the start node.
func (r *runner) init() {
	n := &r.nodes[r.startIdx]
	n.status = open
	n.g = 0
	n.h = grid.Manhattan(r.start, r.goal)
}

// process runs select/expand rounds until no node is open or the cap is hit.
// It returns the number of rounds and whether the cap stopped the loop.
func (r *runner) process() (iterations int, capReached bool) {
	for iterations < r.opts.MaxIterations {
		idx := r.selectOpen()
		if idx == noParent {
			return iterations, false
		}
		r.expand(idx)
		iterations++
	}
	return iterations, true
}

// selectOpen scans the whole arena and returns the open node with the lowest
// f, or noParent when none is open. Strict < keeps the first in scan order.
func (r *runner) selectOpen() int {
	best, bestF := noParent, math.MaxInt
	for i := range r.nodes {
		n := &r.nodes[i]
		if n.status != open {
			continue
		}
		if f := n.f(); f < bestF {
			best, bestF = i, f
		}
	}
	return best
}

// expand relaxes the in-bounds neighbours of idx and closes it.
//
// Candidate cost is cell cost + parent g + 1 step. The comparison score carries
// one more unit than g'+h', so a stored node is only replaced when the new
// route beats it by at least two.
func (r *runner) expand(idx int) {
	center := r.g.Point(idx)
	parentG := r.nodes[idx].g

	for _, d := range directions {
		p := center.Add(d)
		if !r.g.Contains(p) {
			continue
		}
		next := r.g.Index(p)

		g := r.g.CostAt(next) + parentG + 1
		h := grid.Manhattan(p, r.goal)
		score := g + h + 1

		n := &r.nodes[next]
		if n.status == unvisited || n.f() > score {
			n.status = open
			n.g = g
			n.h = h
			n.parent = idx
		}
	}
	r.nodes[idx].status = closed
}

// reconstruct walks parent links from goal to start and returns the route in
// start→goal order, start excluded. ok is false when the walk needs more than
// MaxPathLength entries; nothing is written past that bound.
func (r *runner) reconstruct() (route Route, ok bool) {
	limit := r.opts.MaxPathLength
	buf := make(Route, 0, min(limit, len(r.nodes)))
	for idx := r.goalIdx; idx != r.startIdx; idx = r.nodes[idx].parent {
		if len(buf) == limit {
			return nil, false
		}
		buf = append(buf, r.g.Point(idx))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf, true
}
