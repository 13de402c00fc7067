package sim

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ErrEmptySample is returned by statistics that need at least one observation.
var ErrEmptySample = errors.New("empty sample")

// SignificanceLevel is the p-value threshold below which two strategies'
// time distributions are reported as different.
const SignificanceLevel = 0.05

// MeanStd returns the mean and population standard deviation of times.
// An empty sample yields (+Inf, 0): a route never taken has no finite mean.
func MeanStd(times []float64) (mean, std float64) {
	if len(times) == 0 {
		return math.Inf(1), 0
	}
	return stat.PopMeanStdDev(times, nil)
}

// Median returns the empirical median of times, or NaN for an empty sample.
func Median(times []float64) float64 {
	if len(times) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), times...)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}
