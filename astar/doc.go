// Package astar implements a bounded, array-based A* search on a grid.Grid.
//
// One search computes one route from a start cell to a goal cell over the
// four axis-aligned moves. Entering a cell costs its grid cost plus a fixed
// step cost of 1; the heuristic is the Manhattan distance to the goal.
//
// Node bookkeeping lives in a SearchState: a dense array with one entry per
// cell (status, parent index, accumulated cost g, heuristic h). A state is an
// arena owned by exactly one search at a time; nothing in it is shared, so
// concurrent searches over the same read-only Grid need no synchronization.
//
// Algorithm:
//
//  1. Mark start open with g=0, h=manhattan(start, goal).
//  2. Up to MaxIterations times: scan every node, select the open node with
//     the smallest f=g+h (first in scan order on ties), stop if none is open,
//     expand its neighbours in the order down, up, left, right, close it.
//  3. A neighbour is (re)opened when it is unvisited or its stored g+h is
//     strictly greater than the candidate g'+h'+1.
//  4. Walk parent links back from the goal into a buffer of MaxPathLength
//     entries and reverse it; the route excludes start and includes goal.
//
// Complexity:
//
//   - Time:   O(W·H · iterations), each iteration is one full scan.
//   - Memory: O(W·H) for the arena plus O(MaxPathLength) for the route.
//
// Options:
//
//   - WithMaxIterations(n): bound on outer iterations (default 100000).
//     Hitting it is not an error; it is logged at Info and flagged in
//     Result.CapReached.
//   - WithMaxPathLength(n): bound on the route buffer (default 1000).
//   - WithLogger(l):        logrus logger for diagnostics.
//
// Errors (returned, abort the call):
//
//   - ErrNilGrid, grid.ErrOutOfBounds, ErrBadMaxIterations, ErrBadMaxPathLength.
//
// Per-goal outcomes (reported in Result.Status, see Result.Err):
//
//   - StatusUnreachable -> ErrUnreachable
//   - StatusPathTooLong -> ErrPathTooLong
package astar
