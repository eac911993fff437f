package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/grid"
)

// ExampleFindPath routes across a 3×3 grid of unit costs.
// Every move pays the entered cell's cost plus a step cost of 1.
func ExampleFindPath() {
	g, _ := grid.NewGrid([][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})

	res, err := astar.FindPath(g, grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Status, res.Route, "cost", res.Cost)

	// Output: found [(1,0) (2,0) (2,1) (2,2)] cost 8
}

// ExampleFindPath_pathTooLong shows the capacity failure on a 1×6 corridor.
func ExampleFindPath_pathTooLong() {
	g, _ := grid.NewGrid([][]int{{1, 1, 1, 1, 1, 1}})

	res, _ := astar.FindPath(g, grid.Point{X: 0, Y: 0}, grid.Point{X: 5, Y: 0}, astar.WithMaxPathLength(3))
	fmt.Println(res.Status, res.Err())

	// Output: path_too_long astar: path exceeds maximum length
}
