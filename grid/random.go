package grid

import "math/rand"

// Bounds of the costs drawn by NewRandom: MinRandomCost inclusive,
// MaxRandomCost exclusive.
const (
	MinRandomCost = 1
	MaxRandomCost = 10
)

// NewRandom builds a width×height grid whose costs are drawn uniformly from
// [MinRandomCost, MaxRandomCost) using rng. The same seed yields the same grid.
// Returns ErrEmptyGrid if either dimension is below 1.
func NewRandom(width, height int, rng *rand.Rand) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	costs := make([]int, width*height)
	for i := range costs {
		costs[i] = MinRandomCost + rng.Intn(MaxRandomCost-MinRandomCost)
	}

	return &Grid{width: width, height: height, costs: costs}, nil
}

// Shuffle returns every cell of g in a random order drawn from rng.
// Callers pick distinct goal and start cells from its prefix.
func (g *Grid) Shuffle(rng *rand.Rand) []Point {
	cells := make([]Point, g.Len())
	for i := range cells {
		cells[i] = g.Point(i)
	}
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	return cells
}
