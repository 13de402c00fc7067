package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/joebhakim/street-crossing-sim/sim"
)

var (
	// Scenario flags; each overrides the YAML value only when set explicitly.
	configPath   string   // Path to a YAML scenario file
	logLevel     string   // Log verbosity level
	seed         int64    // Seed the batch keys are derived from
	rows         int      // Intersection rows
	cols         int      // Intersection columns
	runs         int      // Journeys per batch
	compareRuns  int      // Journeys per strategy in a comparison
	workers      int      // Concurrent journeys
	strategyName string   // Strategy for single-strategy commands
	strategyList []string // Strategies for comparisons
	traceLevel   string   // Journey trace level ("none", "steps")
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "street-crossing-sim",
	Short: "Monte Carlo simulator of pedestrian street-crossing strategies",
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging applies --log to the global logger.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// loadScenario reads the scenario (defaults or --config) and applies any
// explicitly set flags on top of it.
func loadScenario(cmd *cobra.Command) (*sim.Scenario, error) {
	sc := sim.DefaultScenario()
	if configPath != "" {
		loaded, err := sim.LoadScenario(configPath)
		if err != nil {
			return nil, err
		}
		sc = loaded
	}
	applyScenarioFlags(cmd, sc)
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// applyScenarioFlags copies every flag the user set onto sc.
func applyScenarioFlags(cmd *cobra.Command, sc *sim.Scenario) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		sc.Seed = seed
	}
	if flags.Changed("rows") {
		sc.Grid.Rows = rows
	}
	if flags.Changed("cols") {
		sc.Grid.Cols = cols
	}
	if flags.Changed("runs") {
		sc.Runs = runs
	}
	if flags.Changed("compare-runs") {
		sc.CompareRuns = compareRuns
	}
	if flags.Changed("workers") {
		sc.Workers = workers
	}
	if flags.Changed("strategy") {
		sc.Strategy = strategyName
	}
	if flags.Changed("strategies") {
		sc.Strategies = strategyList
	}
	if flags.Changed("trace") {
		sc.Trace = traceLevel
	}
	// Resizing the grid invalidates a configured corner endpoint.
	if (flags.Changed("rows") || flags.Changed("cols")) && sc.End != nil {
		logrus.Warnf("--rows/--cols changed the grid; using its bottom-right corner as end instead of %v", sc.End.Node())
		sc.End = nil
	}
}

// addScenarioFlags registers the shared scenario flags on c.
func addScenarioFlags(c *cobra.Command) {
	c.Flags().StringVar(&configPath, "config", "", "Path to a YAML scenario file")
	c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	c.Flags().Int64Var(&seed, "seed", 42, "Seed for journey randomness")
	c.Flags().IntVar(&rows, "rows", 3, "Number of intersection rows")
	c.Flags().IntVar(&cols, "cols", 4, "Number of intersection columns")
	c.Flags().IntVar(&runs, "runs", 5000, "Number of journeys")
	c.Flags().IntVar(&compareRuns, "compare-runs", 200, "Number of journeys per strategy when comparing")
	c.Flags().IntVar(&workers, "workers", 1, "Number of journeys simulated concurrently")
	c.Flags().StringVar(&strategyName, "strategy", "random", "Strategy name")
	c.Flags().StringSliceVar(&strategyList, "strategies", []string{"random", "oracular", "signal_observer", "edge"}, "Comma-separated strategies to compare")
	c.Flags().StringVar(&traceLevel, "trace", "none", "Journey trace level (none, steps)")
}

// init sets up CLI flags and subcommands
func init() {
	for _, c := range []*cobra.Command{runCmd, pathsCmd, compareCmd, visitsCmd, latticeCmd} {
		addScenarioFlags(c)
		rootCmd.AddCommand(c)
	}
	runCmd.Flags().IntVar(&journeyIndex, "journey", 0, "Index of the batch journey to replay")
	pathsCmd.Flags().IntVar(&topN, "top", 10, "Number of most frequent paths to print (0 = all used)")
	visitsCmd.Flags().IntVar(&topN, "top", 10, "Number of most visited nodes to print (0 = all)")
	latticeCmd.Flags().IntVar(&eastCrossings, "east", 0, "East crossings (default: grid columns)")
	latticeCmd.Flags().IntVar(&southCrossings, "south", 0, "South crossings (default: grid rows)")
}
