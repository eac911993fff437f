// Package grid holds the weighted 2-D cost map that route searches run on.
//
// What:
//
//   - Grid wraps a rectangular [][]int table of entry costs, cost[y][x] ≥ 1.
//   - Point is an integer (X, Y) cell coordinate.
//   - Index/Point convert between coordinates and row-major indices.
//   - NewRandom builds a grid with costs drawn uniformly from [1, 10).
//
// Why:
//
//   - Searches keep their bookkeeping in dense arrays indexed by cell, so the
//     grid exposes the same row-major layout.
//   - A Grid never changes after NewGrid returns; any number of goroutines
//     may read it concurrently without locking.
//
// Complexity:
//
//   - NewGrid:     O(W×H) time and memory (deep copy).
//   - Cost/Index:  O(1).
//
// Errors:
//
//   - ErrEmptyGrid:       input table has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrNonPositiveCost: a cell cost is below 1.
//   - ErrOutOfBounds:     a coordinate lies outside [0,W)×[0,H).
package grid
