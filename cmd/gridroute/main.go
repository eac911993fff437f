// Command gridroute runs grid route searches from the command line.
//
//	gridroute route --grid field.txt --start 0,0 --goal 5,5 --goal 9,2
//	gridroute bench --width 40 --height 40 --goals 10 --tries 10 --router sequential
//
// Every flag can also be set through an environment variable prefixed with
// GRIDROUTE_, e.g. GRIDROUTE_ROUTER=sequential or GRIDROUTE_MAX_ITERATIONS=5000.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("gridroute failed")
		os.Exit(1)
	}
}
