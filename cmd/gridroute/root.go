package main

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/router"
)

// Configuration keys shared by flags, viper and the environment.
const (
	keyLogLevel      = "log-level"
	keyRouter        = "router"
	keyWorkers       = "workers"
	keyMaxIterations = "max-iterations"
	keyMaxPathLength = "max-path-length"
)

var rootCmd = &cobra.Command{
	Use:           "gridroute",
	Short:         "Compute A* routes from one start cell to many goals on a weighted grid",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(viper.GetString(keyLogLevel))
		if err != nil {
			return err
		}
		log.SetLevel(level)
		log.SetOutput(cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	flags := rootCmd.PersistentFlags()
	flags.String(keyLogLevel, "info", "Log level (debug, info, warn, error)")
	flags.String(keyRouter, "parallel", "Router: sequential or parallel")
	flags.Int(keyWorkers, 0, "Parallel router concurrency limit (0 = one goroutine per goal)")
	flags.Int(keyMaxIterations, astar.DefaultMaxIterations, "Iteration cap per search")
	flags.Int(keyMaxPathLength, astar.DefaultMaxPathLength, "Route length cap per search")

	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("GRIDROUTE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// newRouter builds the router selected by the persistent configuration.
func newRouter() (router.Router, error) {
	kind, err := router.ParseKind(viper.GetString(keyRouter))
	if err != nil {
		return nil, err
	}
	return router.New(kind,
		router.WithLogger(log.StandardLogger()),
		router.WithWorkers(viper.GetInt(keyWorkers)),
		router.WithSearchOptions(
			astar.WithMaxIterations(viper.GetInt(keyMaxIterations)),
			astar.WithMaxPathLength(viper.GetInt(keyMaxPathLength)),
		),
	)
}

// parsePoint parses "x,y" into a grid.Point.
func parsePoint(s string) (grid.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Point{}, fmt.Errorf("invalid point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return grid.Point{X: x, Y: y}, nil
}
