package sim

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// exactRankSumLimit is the largest size of the smaller sample for which the
// exact null distribution of U is used on tie-free data.
const exactRankSumLimit = 8

// RankSumResult is the outcome of a two-sided Mann-Whitney rank-sum test.
type RankSumResult struct {
	U      float64 // U statistic of the first sample
	PValue float64
	Exact  bool // true when the exact null distribution was used
}

// RankSumTest performs a two-sided Mann-Whitney U test of the hypothesis
// that x and y come from the same distribution. Small tie-free samples use
// the exact distribution of U; otherwise the normal approximation with tie
// and continuity corrections is used.
func RankSumTest(x, y []float64) (RankSumResult, error) {
	n1, n2 := len(x), len(y)
	if n1 == 0 || n2 == 0 {
		return RankSumResult{}, fmt.Errorf("rank-sum test with sizes %d and %d: %w", n1, n2, ErrEmptySample)
	}

	ranks, tieTerm := averageRanks(append(append([]float64(nil), x...), y...))
	r1 := 0.0
	for _, r := range ranks[:n1] {
		r1 += r
	}
	u1 := r1 - float64(n1*(n1+1))/2
	u2 := float64(n1*n2) - u1
	uMax := math.Max(u1, u2)

	if min(n1, n2) <= exactRankSumLimit && tieTerm == 0 {
		return RankSumResult{U: u1, PValue: exactRankSumPValue(n1, n2, uMax), Exact: true}, nil
	}

	n := float64(n1 + n2)
	mu := float64(n1*n2) / 2
	variance := float64(n1*n2) / 12 * ((n + 1) - tieTerm/(n*(n-1)))
	if variance <= 0 {
		// Every observation tied: no evidence of a difference.
		return RankSumResult{U: u1, PValue: 1}, nil
	}
	z := (uMax - mu - 0.5) / math.Sqrt(variance)
	p := math.Min(1, 2*distuv.UnitNormal.Survival(z))
	return RankSumResult{U: u1, PValue: p}, nil
}

// averageRanks assigns 1-based ranks with ties sharing their mean rank, and
// returns the tie correction term sum(t^3 - t) over tie groups.
func averageRanks(values []float64) ([]float64, float64) {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	ranks := make([]float64, len(values))
	tieTerm := 0.0
	for i := 0; i < len(idx); {
		j := i + 1
		for j < len(idx) && values[idx[j]] == values[idx[i]] {
			j++
		}
		avg := float64(i+j+1) / 2 // mean of ranks i+1..j
		for k := i; k < j; k++ {
			ranks[idx[k]] = avg
		}
		if t := float64(j - i); t > 1 {
			tieTerm += t*t*t - t
		}
		i = j
	}
	return ranks, tieTerm
}

// exactRankSumPValue returns the two-sided p-value 2*P(U >= u) under the
// null distribution of U for sample sizes n1, n2, capped at 1.
func exactRankSumPValue(n1, n2 int, u float64) float64 {
	counts := uDistribution(n1, n2)
	total := 0.0
	for _, c := range counts {
		total += c
	}
	tail := 0.0
	for k := int(math.Ceil(u)); k < len(counts); k++ {
		tail += counts[k]
	}
	return math.Min(1, 2*tail/total)
}

// uDistribution returns, for every k in 0..n1*n2, the number of
// arrangements of n1 x's and n2 y's whose U statistic equals k. These are the
// coefficients of the Gaussian binomial [n1+n2 choose n1], built up one
// factor (1-q^(b+i))/(1-q^i) at a time over the smaller sample size.
func uDistribution(n1, n2 int) []float64 {
	a, b := min(n1, n2), max(n1, n2)
	counts := make([]float64, a*b+1)
	counts[0] = 1
	deg := 0
	for i := 1; i <= a; i++ {
		// multiply by (1 - q^(b+i))
		deg += b + i
		for k := min(deg, len(counts)-1); k >= b+i; k-- {
			counts[k] -= counts[k-b-i]
		}
		// divide by (1 - q^i); the quotient is again a polynomial
		deg -= i
		for k := i; k <= deg; k++ {
			counts[k] += counts[k-i]
		}
		for k := deg + 1; k <= min(deg+i, len(counts)-1); k++ {
			counts[k] = 0
		}
	}
	return counts
}
