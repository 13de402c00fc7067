package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/joebhakim/street-crossing-sim/sim"
)

// visitsCmd counts node visits and measures their diagonal symmetry
var visitsCmd = &cobra.Command{
	Use:   "visits",
	Short: "Count node visits and their mirror asymmetry",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		sc, err := loadScenario(cmd)
		if err != nil {
			logrus.Fatalf("invalid scenario: %v", err)
		}
		strategy, err := sc.PrimaryStrategy()
		if err != nil {
			logrus.Fatalf("invalid strategy: %v", err)
		}
		if sc.Grid.Rows != sc.Grid.Cols {
			logrus.Warnf("%dx%d grid is not square; only nodes with an in-grid mirror are compared", sc.Grid.Rows, sc.Grid.Cols)
		}
		g, _, err := sc.Build()
		if err != nil {
			logrus.Fatalf("building grid: %v", err)
		}
		start, end := sc.Endpoints()

		results, err := sim.RunBatch(context.Background(), g, start, end, strategy, sc.Runs, sc.BatchOptions())
		if err != nil {
			logrus.Fatalf("batch failed: %v", err)
		}
		writeVisitReport(cmd.OutOrStdout(), g, strategy, len(results), sim.NodeVisitsFromResults(results), topN)
	},
}
