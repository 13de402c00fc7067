package cmd

import (
	"fmt"
	"io"
	"math"
	"sort"

	sim "github.com/joebhakim/street-crossing-sim/sim"
	"github.com/joebhakim/street-crossing-sim/sim/trace"
)

// writeJourneyReport prints one journey's outcome and its trace summary.
func writeJourneyReport(w io.Writer, res sim.JourneyResult, tr *trace.JourneyTrace, steps bool) {
	fmt.Fprintln(w, "=== Journey ===")
	fmt.Fprintf(w, "Key                  : %d\n", res.Key)
	fmt.Fprintf(w, "State                : %s\n", res.State)
	fmt.Fprintf(w, "Time                 : %.3f s\n", res.Time)
	fmt.Fprintf(w, "Edges                : %d\n", len(res.Edges))
	fmt.Fprintf(w, "Signature            : %s\n", res.Signature())
	if steps {
		fmt.Fprintln(w, "--- Steps ---")
		for _, s := range tr.Steps {
			fmt.Fprintf(w, "%3d t=%7.3f %s -> %s %s %-8s %-10s wait=%.3f green=%d/%d\n",
				s.Step, s.Clock, s.From, s.To, s.Direction, s.EdgeType, s.Orientation, s.Wait, s.GreenCount, s.Candidates)
		}
	}
	sum := trace.Summarize(tr)
	fmt.Fprintln(w, "--- Summary ---")
	fmt.Fprintf(w, "Crossings            : %d\n", sum.CrossingSteps)
	fmt.Fprintf(w, "Green on arrival     : %d (%.1f%%)\n", sum.GreenOnArrival, 100*sum.GreenRatio)
	fmt.Fprintf(w, "Total wait           : %.3f s (max %.3f s)\n", sum.TotalWait, sum.MaxWait)
	fmt.Fprintf(w, "Moving time          : %.3f s\n", sum.MovingTime)
	fmt.Fprintf(w, "East / South moves   : %d / %d\n", sum.Directions[string(sim.East)], sum.Directions[string(sim.South)])
}

// writePathReport prints the batch totals and the top most frequent paths.
func writePathReport(w io.Writer, pa *sim.PathAnalysis, top int) {
	fmt.Fprintln(w, "=== Path Analysis ===")
	fmt.Fprintf(w, "Strategy             : %s\n", pa.Strategy)
	fmt.Fprintf(w, "Journeys             : %d\n", pa.Runs)
	fmt.Fprintf(w, "Failed               : %d\n", pa.Failed)
	if pa.Unmatched > 0 {
		fmt.Fprintf(w, "Unmatched            : %d\n", pa.Unmatched)
	}
	fmt.Fprintf(w, "Enumerated paths     : %d\n", len(pa.AllPaths))
	fmt.Fprintf(w, "Path classes         : %d\n", len(pa.Records))
	fmt.Fprintf(w, "Classes used         : %d (%.1f%%)\n", pa.Used(), 100*pa.Utilization())

	successful := pa.Successful()
	fmt.Fprintln(w, "--- Most frequent paths ---")
	for i, rec := range pa.TopPaths(top) {
		share := 0.0
		if successful > 0 {
			share = 100 * float64(rec.Frequency) / float64(successful)
		}
		fmt.Fprintf(w, "%3d. n=%-6d %5.1f%% mean=%.3f std=%.3f %s\n",
			i+1, rec.Frequency, share, rec.MeanTime, rec.StdTime, sim.PathSignature(rec.Edges))
	}
}

// writeComparisonReport prints per-strategy statistics and pairwise tests.
func writeComparisonReport(w io.Writer, cmp *sim.Comparison) {
	fmt.Fprintln(w, "=== Strategy Comparison ===")
	for _, s := range cmp.Strategies {
		st := cmp.Stats[s]
		fmt.Fprintf(w, "%-18s n=%-6d failed=%-4d mean=%.3f std=%.3f median=%.3f\n",
			s, st.Count, st.Failed, st.Mean, st.Std, st.Median)
	}
	fmt.Fprintln(w, "--- Rank-sum tests ---")
	for _, t := range cmp.Tests {
		mark := ""
		if t.Significant {
			mark = " *"
		}
		fmt.Fprintf(w, "%-18s vs %-18s U=%-10.1f p=%.4g%s\n", t.A, t.B, t.U, t.PValue, mark)
	}
	fmt.Fprintf(w, "(* p < %.2f)\n", sim.SignificanceLevel)
}

// writeVisitReport prints the most visited nodes and the mirror asymmetry.
func writeVisitReport(w io.Writer, g *sim.Graph, strategy sim.Strategy, journeys int, visits map[sim.Node]int, top int) {
	nodes := make([]sim.Node, 0, len(visits))
	for n := range visits {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		if visits[nodes[i]] != visits[nodes[j]] {
			return visits[nodes[i]] > visits[nodes[j]]
		}
		return nodes[i].Less(nodes[j])
	})
	if top > 0 && top < len(nodes) {
		nodes = nodes[:top]
	}

	pairs := sim.MirrorPairs(g)
	fmt.Fprintln(w, "=== Node Visits ===")
	fmt.Fprintf(w, "Strategy             : %s\n", strategy)
	fmt.Fprintf(w, "Successful journeys  : %d\n", journeys)
	fmt.Fprintf(w, "Nodes visited        : %d of %d\n", len(visits), g.NumNodes())
	fmt.Fprintf(w, "Mirror pairs         : %d\n", len(pairs))
	fmt.Fprintf(w, "Mean asymmetry       : %.4f\n", sim.MeanAsymmetry(visits, pairs))
	fmt.Fprintln(w, "--- Most visited ---")
	for _, n := range nodes {
		fmt.Fprintf(w, "%-12s %d\n", n, visits[n])
	}
}

// writeLatticeReport prints lattice-model statistics per strategy, in the
// order given by names.
func writeLatticeReport(w io.Writer, east, south int, names []string, times map[string][]float64) {
	fmt.Fprintln(w, "=== Lattice Model ===")
	fmt.Fprintf(w, "Crossings            : %d east, %d south\n", east, south)
	for _, name := range names {
		mean, std := sim.MeanStd(times[name])
		median := sim.Median(times[name])
		if math.IsInf(mean, 1) {
			fmt.Fprintf(w, "%-18s no walks\n", name)
			continue
		}
		fmt.Fprintf(w, "%-18s n=%-6d mean=%.3f std=%.3f median=%.3f\n", name, len(times[name]), mean, std, median)
	}
}
