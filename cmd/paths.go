package cmd

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/joebhakim/street-crossing-sim/sim"
)

var topN int // Number of rows to print in ranked tables

// pathsCmd runs a batch under one strategy and ranks the paths it used
var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Run a batch of journeys and report path frequencies",
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
		g, _, err := sc.Build()
		if err != nil {
			logrus.Fatalf("building grid: %v", err)
		}
		start, end := sc.Endpoints()

		startTime := time.Now()
		pa, err := sim.AnalyzePaths(context.Background(), g, start, end, strategy, sc.Runs, sc.BatchOptions())
		if err != nil {
			logrus.Fatalf("path analysis failed: %v", err)
		}
		logrus.Infof("analyzed %d journeys in %v", sc.Runs, time.Since(startTime))
		writePathReport(cmd.OutOrStdout(), pa, topN)
	},
}
