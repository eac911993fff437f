package grid

import (
	"fmt"
)

// NewGrid constructs a Grid from a non-empty, rectangular table indexed as
// costs[y][x]. The input is deep-copied, so later changes by the caller do not
// leak into the grid.
// Returns ErrEmptyGrid if costs has no rows or no columns,
// ErrNonRectangular if any row length differs and
// ErrNonPositiveCost if any value is below 1.
// Complexity: O(W×H) time and memory.
func NewGrid(costs [][]int) (*Grid, error) {
	if len(costs) == 0 || len(costs[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(costs), len(costs[0])
	for _, row := range costs {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	flat := make([]int, 0, w*h)
	for y, row := range costs {
		for x, c := range row {
			if c < 1 {
				return nil, fmt.Errorf("%w: cost %d at (%d,%d)", ErrNonPositiveCost, c, x, y)
			}
		}
		flat = append(flat, row...)
	}

	return &Grid{width: w, height: h, costs: flat}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int { return len(g.costs) }

// Contains reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Cost returns the price of entering p.
// Returns ErrOutOfBounds if p is outside the grid; coordinates are never clamped.
func (g *Grid) Cost(p Point) (int, error) {
	if !g.Contains(p) {
		return 0, fmt.Errorf("%w: %s not in %dx%d", ErrOutOfBounds, p, g.width, g.height)
	}
	return g.costs[g.Index(p)], nil
}

// CostAt returns the cost of the cell at row-major index idx.
// idx must be in [0, Len()); it is not checked.
func (g *Grid) CostAt(idx int) int {
	return g.costs[idx]
}

// Index maps p to a row-major index: Y*Width + X.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Y*g.width + p.X
}

// Point converts a row-major index back to its coordinate.
// Complexity: O(1).
func (g *Grid) Point(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}

// Check returns nil when p is inside the grid and a wrapped ErrOutOfBounds
// otherwise.
func (g *Grid) Check(p Point) error {
	if g.Contains(p) {
		return nil
	}
	return fmt.Errorf("%w: %s not in %dx%d", ErrOutOfBounds, p, g.width, g.height)
}

// Rows returns a fresh copy of the cost table as costs[y][x].
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.height)
	for y := range rows {
		rows[y] = make([]int, g.width)
		copy(rows[y], g.costs[y*g.width:(y+1)*g.width])
	}
	return rows
}
