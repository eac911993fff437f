package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/grid"
)

var (
	gridFile   string
	startPoint string
	goalPoints []string
)

func init() {
	routeCmd := &cobra.Command{
		Use:   "route",
		Short: "Route from a start cell to each goal on a grid read from a file",
		Long: `Read a cost table (one row per line, whitespace-separated costs >= 1)
and print one line per goal, in goal order.

Examples:
  gridroute route --grid field.txt --start 0,0 --goal 4,4
  cat field.txt | gridroute route --grid - --start 2,1 --goal 0,0 --goal 7,3 --router sequential`,
		RunE: runRoute,
	}

	routeCmd.Flags().StringVarP(&gridFile, "grid", "g", "-", "Grid file, - for stdin")
	routeCmd.Flags().StringVarP(&startPoint, "start", "s", "0,0", "Start cell as x,y")
	routeCmd.Flags().StringArrayVarP(&goalPoints, "goal", "t", nil, "Goal cell as x,y (repeatable)")
	_ = routeCmd.MarkFlagRequired("goal")

	rootCmd.AddCommand(routeCmd)
}

func runRoute(cmd *cobra.Command, args []string) error {
	g, err := loadGrid(cmd, gridFile)
	if err != nil {
		return err
	}
	start, err := parsePoint(startPoint)
	if err != nil {
		return err
	}
	goals := make([]grid.Point, len(goalPoints))
	for i, s := range goalPoints {
		if goals[i], err = parsePoint(s); err != nil {
			return err
		}
	}

	r, err := newRouter()
	if err != nil {
		return err
	}
	results, err := r.FindRoutes(cmd.Context(), g, start, goals)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, res := range results {
		printResult(out, res)
	}
	return nil
}

func loadGrid(cmd *cobra.Command, path string) (*grid.Grid, error) {
	if path == "-" {
		return grid.Read(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return grid.Read(f)
}

func printResult(w io.Writer, res astar.Result) {
	if !res.Found() {
		fmt.Fprintf(w, "%s %s iterations=%d\n", res.Goal, res.Status, res.Iterations)
		return
	}
	fmt.Fprintf(w, "%s %s cost=%d steps=%d route=%v\n", res.Goal, res.Status, res.Cost, len(res.Route), res.Route)
}
