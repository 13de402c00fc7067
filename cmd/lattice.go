package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/joebhakim/street-crossing-sim/sim/lattice"
)

var (
	eastCrossings  int // East crossings for the lattice model
	southCrossings int // South crossings for the lattice model
)

// latticeCmd runs the graph-free lattice model for every compared strategy
var latticeCmd = &cobra.Command{
	Use:   "lattice",
	Short: "Run the simplified lattice model for each strategy",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		sc, err := loadScenario(cmd)
		if err != nil {
			logrus.Fatalf("invalid scenario: %v", err)
		}
		strategies, err := sc.ComparedStrategies()
		if err != nil {
			logrus.Fatalf("invalid strategies: %v", err)
		}
		east, south := eastCrossings, southCrossings
		if east <= 0 {
			east = sc.Grid.Cols
		}
		if south <= 0 {
			south = sc.Grid.Rows
		}

		times := make(map[string][]float64, len(strategies))
		names := make([]string, 0, len(strategies))
		for _, s := range strategies {
			times[s.String()] = lattice.RunMany(east, south, s, sc.Runs, sc.Seed)
			names = append(names, s.String())
		}
		writeLatticeReport(cmd.OutOrStdout(), east, south, names, times)
	},
}
