package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/joebhakim/street-crossing-sim/sim"
	"github.com/joebhakim/street-crossing-sim/sim/trace"
)

var journeyIndex int // Index of the journey within the seeded batch

// runCmd simulates a single journey and prints its outcome
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one journey and print its steps",
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

		// Journey i here is journey i of `paths` with the same seed.
		key := sim.JourneyKey(sim.NewSimulationKey(sc.Seed), journeyIndex)
		tr := trace.NewJourneyTrace(trace.TraceConfig{Level: trace.TraceLevel(sc.Trace)})
		if !tr.Enabled() {
			// The summary needs steps even when they are not printed.
			tr = trace.NewJourneyTrace(trace.TraceConfig{Level: trace.TraceLevelSteps})
		}
		logrus.Infof("simulating journey %d (key %d) %v -> %v under %s", journeyIndex, key, start, end, strategy)
		res := sim.SimulateJourney(g, start, end, strategy, sim.JourneyOptions{
			RNG:   sim.NewPartitionedRNG(key),
			Trace: tr,
		})
		writeJourneyReport(cmd.OutOrStdout(), res, tr, sc.Trace == string(trace.TraceLevelSteps))
	},
}
