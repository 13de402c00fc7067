package sim

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// PathRecord accumulates the journeys that followed one path class.
type PathRecord struct {
	Index     int             // position of the first enumerated path with this signature
	Nodes     []Node          // node sequence of that path
	Edges     []EdgeSignature // its edge signature list
	EdgeCount int
	PathCount int // enumerated paths sharing this signature
	Times     []float64
	Frequency int
	MeanTime  float64 // +Inf when Frequency == 0
	StdTime   float64
}

// PathAnalysis is the result of a path-frequency batch.
type PathAnalysis struct {
	Strategy Strategy
	Runs     int
	Records  map[Signature]*PathRecord
	// Order lists record signatures in enumeration order.
	Order    []Signature
	AllPaths []Path
	// Failed counts journeys that hit a dead end; they are excluded.
	Failed int
	// Unmatched counts successful journeys whose signature was not
	// enumerated. Non-zero means the movement rule and the enumerator
	// disagree.
	Unmatched int
}

// BatchOptions configures a Monte Carlo batch.
type BatchOptions struct {
	// Seed keys the batch; journey i uses JourneyKey(Seed, i).
	Seed int64
	// Workers > 1 runs journeys concurrently. Results do not depend on it.
	Workers int
}

// RunJourneys simulates n independent journeys and returns all results,
// failed ones included, indexed by journey number. Every journey gets its
// own PartitionedRNG and therefore its own signal offsets.
func RunJourneys(ctx context.Context, g *Graph, start, end Node, strategy Strategy, n int, opts BatchOptions) ([]JourneyResult, error) {
	if !strategy.IsValid() {
		return nil, fmt.Errorf("%w %v", ErrUnknownStrategy, strategy)
	}
	if n < 0 {
		return nil, fmt.Errorf("journey count must be non-negative, got %d", n)
	}
	batch := NewSimulationKey(opts.Seed)
	results := make([]JourneyResult, n)
	run := func(i int) {
		rng := NewPartitionedRNG(JourneyKey(batch, i))
		results[i] = SimulateJourney(g, start, end, strategy, JourneyOptions{RNG: rng})
	}

	if opts.Workers <= 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			run(i)
		}
		return results, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Workers)
	for i := 0; i < n; i++ {
		i := i // per-iteration copy (go1.22+ loopvar semantics on go1.21)
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			run(i)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RunBatch simulates n journeys and returns only the successful ones.
func RunBatch(ctx context.Context, g *Graph, start, end Node, strategy Strategy, n int, opts BatchOptions) ([]JourneyResult, error) {
	all, err := RunJourneys(ctx, g, start, end, strategy, n, opts)
	if err != nil {
		return nil, err
	}
	ok := make([]JourneyResult, 0, len(all))
	for _, r := range all {
		if r.Success {
			ok = append(ok, r)
		} else {
			logrus.Debugf("excluding failed journey (key %d) from batch", r.Key)
		}
	}
	return ok, nil
}

// NewPathAnalysis enumerates every path from start to end and creates one
// zero-frequency record per distinct signature.
func NewPathAnalysis(g *Graph, start, end Node, strategy Strategy) *PathAnalysis {
	paths := EnumeratePaths(g, start, end)
	pa := &PathAnalysis{
		Strategy: strategy,
		Records:  make(map[Signature]*PathRecord, len(paths)),
		AllPaths: paths,
	}
	for i, p := range paths {
		sig := p.Signature()
		if rec, ok := pa.Records[sig]; ok {
			rec.PathCount++
			continue
		}
		pa.Records[sig] = &PathRecord{
			Index:     i,
			Nodes:     p.Nodes,
			Edges:     p.Edges,
			EdgeCount: len(p.Edges),
			PathCount: 1,
		}
		pa.Order = append(pa.Order, sig)
	}
	logrus.Infof("enumerated %d paths (%d signatures) from %v to %v", len(paths), len(pa.Order), start, end)
	return pa
}

// Add folds one journey result into the analysis. Not safe for concurrent
// use: callers fold from a single goroutine.
func (pa *PathAnalysis) Add(r JourneyResult) {
	pa.Runs++
	if !r.Success {
		pa.Failed++
		logrus.Debugf("journey (key %d) failed in state %s after %d steps", r.Key, r.State, len(r.Edges))
		return
	}
	sig := r.Signature()
	rec, ok := pa.Records[sig]
	if !ok {
		pa.Unmatched++
		logrus.Errorf("journey (key %d) followed signature %q which was not enumerated", r.Key, sig)
		return
	}
	rec.Times = append(rec.Times, r.Time)
	rec.Frequency++
}

// Finalize computes per-record mean and standard deviation.
func (pa *PathAnalysis) Finalize() {
	for _, rec := range pa.Records {
		rec.MeanTime, rec.StdTime = MeanStd(rec.Times)
	}
}

// AnalyzePaths runs n journeys under strategy and attributes each successful
// one to its enumerated path class.
func AnalyzePaths(ctx context.Context, g *Graph, start, end Node, strategy Strategy, n int, opts BatchOptions) (*PathAnalysis, error) {
	pa := NewPathAnalysis(g, start, end, strategy)
	results, err := RunJourneys(ctx, g, start, end, strategy, n, opts)
	if err != nil {
		return nil, fmt.Errorf("running %s batch: %w", strategy, err)
	}
	for _, r := range results {
		pa.Add(r)
	}
	pa.Finalize()
	if pa.Unmatched > 0 {
		logrus.Errorf("%d of %d %s journeys did not match any enumerated path", pa.Unmatched, n, strategy)
	}
	return pa, nil
}

// Successful returns the number of journeys attributed to a record.
func (pa *PathAnalysis) Successful() int {
	total := 0
	for _, rec := range pa.Records {
		total += rec.Frequency
	}
	return total
}

// Used returns the number of records with at least one journey.
func (pa *PathAnalysis) Used() int {
	used := 0
	for _, rec := range pa.Records {
		if rec.Frequency > 0 {
			used++
		}
	}
	return used
}

// Utilization is the fraction of path classes taken at least once.
func (pa *PathAnalysis) Utilization() float64 {
	if len(pa.Records) == 0 {
		return 0
	}
	return float64(pa.Used()) / float64(len(pa.Records))
}

// TopPaths returns up to k used records, most frequent first. Ties keep
// enumeration order. k <= 0 returns all used records.
func (pa *PathAnalysis) TopPaths(k int) []*PathRecord {
	var used []*PathRecord
	for _, sig := range pa.Order {
		if rec := pa.Records[sig]; rec.Frequency > 0 {
			used = append(used, rec)
		}
	}
	sort.SliceStable(used, func(i, j int) bool { return used[i].Frequency > used[j].Frequency })
	if k > 0 && k < len(used) {
		used = used[:k]
	}
	return used
}
