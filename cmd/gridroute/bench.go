package main

import (
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gridroute/grid"
)

var (
	benchWidth  int
	benchHeight int
	benchGoals  int
	benchTries  int
	benchSeed   int64
)

func init() {
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Time repeated batches on freshly randomized grids",
		Long: `For each try, build a random grid with costs in [1,10), shuffle its cells,
take the first --goals cells as goals and the next one as start, and time one
FindRoutes batch. Prints the elapsed time per try and the average.

Examples:
  gridroute bench
  gridroute bench --router sequential --tries 5 --seed 7`,
		RunE: runBench,
	}

	benchCmd.Flags().IntVar(&benchWidth, "width", 40, "Grid width")
	benchCmd.Flags().IntVar(&benchHeight, "height", 40, "Grid height")
	benchCmd.Flags().IntVarP(&benchGoals, "goals", "n", 10, "Goals per batch")
	benchCmd.Flags().IntVar(&benchTries, "tries", 10, "Number of batches")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 1, "Random seed")

	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchTries < 1 {
		return fmt.Errorf("tries must be at least 1, got %d", benchTries)
	}
	if benchGoals < 0 || benchGoals+1 > benchWidth*benchHeight {
		return fmt.Errorf("need %d distinct cells for goals and start, grid has %d", benchGoals+1, benchWidth*benchHeight)
	}
	r, err := newRouter()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	rng := rand.New(rand.NewSource(benchSeed))
	fmt.Fprintf(out, "start [%s]\n", viper.GetString(keyRouter))

	var total time.Duration
	for i := 0; i < benchTries; i++ {
		g, err := grid.NewRandom(benchWidth, benchHeight, rng)
		if err != nil {
			return err
		}
		cells := g.Shuffle(rng)
		goals, start := cells[:benchGoals], cells[benchGoals]

		began := time.Now()
		results, err := r.FindRoutes(cmd.Context(), g, start, goals)
		elapsed := time.Since(began)
		if err != nil {
			return err
		}
		total += elapsed

		found := 0
		for _, res := range results {
			if res.Found() {
				found++
			}
		}
		log.WithFields(log.Fields{"try": i + 1, "found": found, "goals": len(goals)}).Debug("bench batch done")
		fmt.Fprintf(out, "%d:%.3fms\n", i+1, float64(elapsed.Microseconds())/1000)
	}
	avg := total / time.Duration(benchTries)
	fmt.Fprintf(out, "average: %.3fms\n", float64(avg.Microseconds())/1000)
	return nil
}
