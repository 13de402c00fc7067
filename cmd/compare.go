package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/joebhakim/street-crossing-sim/sim"
)

// compareCmd runs one batch per strategy and tests every pair
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare journey times across strategies",
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
		if len(strategies) < 2 {
			logrus.Warnf("only %d strategy configured; no pairwise tests will run", len(strategies))
		}
		g, _, err := sc.Build()
		if err != nil {
			logrus.Fatalf("building grid: %v", err)
		}
		start, end := sc.Endpoints()

		cmp, err := sim.CompareStrategies(context.Background(), g, start, end, strategies, sc.CompareRuns, sc.BatchOptions())
		if err != nil {
			logrus.Fatalf("comparison failed: %v", err)
		}
		writeComparisonReport(cmd.OutOrStdout(), cmp)
	},
}
