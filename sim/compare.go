package sim

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// StrategyStats summarizes one strategy's successful journey times.
type StrategyStats struct {
	Strategy Strategy
	Mean     float64
	Std      float64
	Median   float64
	Count    int
	Failed   int
	Times    []float64
}

// PairwiseTest is a two-sided rank-sum comparison of two strategies.
type PairwiseTest struct {
	A, B        Strategy
	U           float64
	PValue      float64
	Significant bool // PValue < SignificanceLevel
}

// Comparison is the cross-strategy result: per-strategy statistics in input
// order plus one test per unordered pair.
type Comparison struct {
	Strategies []Strategy
	Stats      map[Strategy]*StrategyStats
	Tests      []PairwiseTest
}

// CompareStrategies runs an independent batch of n journeys per strategy
// and tests every pair of time distributions. Each strategy's batch is keyed
// by BatchKey(opts.Seed, strategy), so adding or reordering strategies does
// not change the others' results.
func CompareStrategies(ctx context.Context, g *Graph, start, end Node, strategies []Strategy, n int, opts BatchOptions) (*Comparison, error) {
	cmp := &Comparison{
		Strategies: append([]Strategy(nil), strategies...),
		Stats:      make(map[Strategy]*StrategyStats, len(strategies)),
	}
	base := NewSimulationKey(opts.Seed)
	for _, s := range strategies {
		if _, dup := cmp.Stats[s]; dup {
			return nil, fmt.Errorf("strategy %s listed twice", s)
		}
		batchOpts := opts
		batchOpts.Seed = int64(BatchKey(base, s))
		results, err := RunJourneys(ctx, g, start, end, s, n, batchOpts)
		if err != nil {
			return nil, fmt.Errorf("running %s batch: %w", s, err)
		}
		st := &StrategyStats{Strategy: s}
		for _, r := range results {
			if !r.Success {
				st.Failed++
				continue
			}
			st.Times = append(st.Times, r.Time)
		}
		st.Count = len(st.Times)
		st.Mean, st.Std = MeanStd(st.Times)
		st.Median = Median(st.Times)
		cmp.Stats[s] = st
		logrus.Infof("%s: mean=%.3f std=%.3f n=%d failed=%d", s, st.Mean, st.Std, st.Count, st.Failed)
	}

	for i := 0; i < len(strategies); i++ {
		for j := i + 1; j < len(strategies); j++ {
			a, b := cmp.Stats[strategies[i]], cmp.Stats[strategies[j]]
			res, err := RankSumTest(a.Times, b.Times)
			if err != nil {
				logrus.Warnf("skipping %s vs %s: %v", a.Strategy, b.Strategy, err)
				continue
			}
			cmp.Tests = append(cmp.Tests, PairwiseTest{
				A:           a.Strategy,
				B:           b.Strategy,
				U:           res.U,
				PValue:      res.PValue,
				Significant: res.PValue < SignificanceLevel,
			})
		}
	}
	return cmp, nil
}

// Test returns the pairwise test between a and b in either order.
func (c *Comparison) Test(a, b Strategy) (PairwiseTest, bool) {
	for _, t := range c.Tests {
		if (t.A == a && t.B == b) || (t.A == b && t.B == a) {
			return t, true
		}
	}
	return PairwiseTest{}, false
}
