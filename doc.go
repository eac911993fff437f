// Package gridroute computes shortest routes on weighted 2-D grids.
//
// It pairs a bounded, array-based A* search with two ways to run it for many
// goals from one start cell: one after another, or all at once over a shared
// read-only grid.
//
// Under the hood, everything is organized under three packages:
//
//	grid/   — immutable cost map, Point, index helpers, random generation
//	astar/  — SearchState arena, Searcher, FindPath, Result and Route
//	router/ — Router interface, Sequential and Parallel fan-out/fan-in
//
// plus the cmd/gridroute CLI (route and bench subcommands).
//
// Quick ASCII example (costs, S = start, G = goal):
//
//	S 1 1
//	1 9 1
//	1 1 G
//
// routes S→G around the centre in four moves of cost 2 each.
//
//	go get github.com/katalvlaran/gridroute
package gridroute
