package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/joebhakim/street-crossing-sim/sim"
	"github.com/joebhakim/street-crossing-sim/sim/trace"
)

// newFlagCommand returns a throwaway command carrying the scenario flags.
func newFlagCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addScenarioFlags(c)
	require.NoError(t, c.Flags().Parse(args))
	return c
}

func TestApplyScenarioFlags_OnlyChangedFlagsOverride(t *testing.T) {
	// GIVEN a scenario loaded from YAML with seed 7 and 3 workers
	sc, err := sim.ParseScenario([]byte("seed: 7\nworkers: 3\nruns: 10\n"))
	require.NoError(t, err)

	// WHEN only --seed and --strategies are passed
	c := newFlagCommand(t, "--seed", "100", "--strategies", "edge,oracular")
	applyScenarioFlags(c, sc)

	// THEN those override and the rest keep their YAML values
	assert.Equal(t, int64(100), sc.Seed)
	assert.Equal(t, []string{"edge", "oracular"}, sc.Strategies)
	assert.Equal(t, 3, sc.Workers)
	assert.Equal(t, 10, sc.Runs)
	assert.Equal(t, 3, sc.Grid.Rows)
}

func TestApplyScenarioFlags_ResizeDropsConfiguredEnd(t *testing.T) {
	sc := sim.DefaultScenario()
	sc.End = &sim.NodeSpec{Row: 2, Col: 3, X: 1, Y: 1}

	applyScenarioFlags(newFlagCommand(t, "--rows", "2", "--cols", "2"), sc)

	require.NoError(t, sc.Validate())
	_, end := sc.Endpoints()
	assert.Equal(t, sim.Node{Row: 1, Col: 1, X: 1, Y: 1}, end)
}

func TestLoadScenario_ConfigThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  rows: 2\n  cols: 2\nstrategy: edge\n"), 0o644))

	c := newFlagCommand(t, "--config", path, "--runs", "25")
	t.Cleanup(func() { configPath = "" })

	sc, err := loadScenario(c)
	require.NoError(t, err)
	assert.Equal(t, 2, sc.Grid.Rows)
	assert.Equal(t, "edge", sc.Strategy)
	assert.Equal(t, 25, sc.Runs)
}

func TestLoadScenario_InvalidFlagRejected(t *testing.T) {
	c := newFlagCommand(t, "--strategy", "teleport")
	t.Cleanup(func() { strategyName = "random" })
	_, err := loadScenario(c)
	assert.Error(t, err)
}

func TestWritePathReport(t *testing.T) {
	// GIVEN an analysis of the edge walker on one intersection
	g, _, err := sim.BuildCityGraph(1, 1, sim.Lengths{Vertical: 0.5, Horizontal: 1}, sim.Lengths{Vertical: 4, Horizontal: 3})
	require.NoError(t, err)
	pa, err := sim.AnalyzePaths(context.Background(), g, sim.Node{}, sim.Node{X: 1, Y: 1}, sim.StrategyEdge, 20, sim.BatchOptions{Seed: 1})
	require.NoError(t, err)

	// WHEN the report is written
	var buf bytes.Buffer
	writePathReport(&buf, pa, 5)

	// THEN it names the strategy and ranks the only path used
	out := buf.String()
	assert.Contains(t, out, "=== Path Analysis ===")
	assert.Contains(t, out, "Strategy             : edge")
	assert.Contains(t, out, "Classes used         : 1 (50.0%)")
	assert.Contains(t, out, "100.0%")
	assert.Contains(t, out, "chcv")
	assert.NotContains(t, out, "Unmatched")
}

func TestWriteJourneyReport_Steps(t *testing.T) {
	g, _, err := sim.BuildCityGraph(1, 1, sim.Lengths{Vertical: 0.5, Horizontal: 1}, sim.Lengths{Vertical: 4, Horizontal: 3})
	require.NoError(t, err)
	tr := trace.NewJourneyTrace(trace.TraceConfig{Level: trace.TraceLevelSteps})
	res := sim.SimulateJourney(g, sim.Node{}, sim.Node{X: 1, Y: 1}, sim.StrategyEdge, sim.JourneyOptions{Trace: tr})

	var buf bytes.Buffer
	writeJourneyReport(&buf, res, tr, true)
	out := buf.String()
	assert.Contains(t, out, "State                : arrived")
	assert.Contains(t, out, "--- Steps ---")
	assert.Contains(t, out, "(0,0,0,0) -> (0,0,1,0) E crossing")
	assert.Contains(t, out, "East / South moves   : 1 / 1")
}

func TestWriteComparisonReport_MarksSignificance(t *testing.T) {
	cmp := &sim.Comparison{
		Strategies: []sim.Strategy{sim.StrategyRandom, sim.StrategyOracular},
		Stats: map[sim.Strategy]*sim.StrategyStats{
			sim.StrategyRandom:   {Strategy: sim.StrategyRandom, Count: 3, Mean: 11},
			sim.StrategyOracular: {Strategy: sim.StrategyOracular, Count: 3, Mean: 10},
		},
		Tests: []sim.PairwiseTest{{A: sim.StrategyRandom, B: sim.StrategyOracular, U: 9, PValue: 0.01, Significant: true}},
	}
	var buf bytes.Buffer
	writeComparisonReport(&buf, cmp)
	out := buf.String()
	assert.Contains(t, out, "random")
	assert.Contains(t, out, "p=0.01 *")
}

func TestWriteLatticeReport_EmptySample(t *testing.T) {
	var buf bytes.Buffer
	writeLatticeReport(&buf, 2, 2, []string{"edge"}, map[string][]float64{"edge": nil})
	assert.Contains(t, buf.String(), "no walks")
}
