package sim

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"
)

// ErrUnknownStrategy is returned when a strategy name is not recognized.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy is the decision policy a pedestrian uses to pick the next move.
// The set is closed; every value is handled by chooseCandidate.
type Strategy int

const (
	// StrategyRandom picks uniformly among valid moves, blind to signals.
	StrategyRandom Strategy = iota
	// StrategyOracular sees every signal: any green move, else the shortest wait.
	StrategyOracular
	// StrategyOracularRandom behaves like StrategyOracular.
	StrategyOracularRandom
	// StrategyOptionMaximizer observes current signal colors only and breaks
	// green ties toward the axis with more moves left.
	StrategyOptionMaximizer
	// StrategySignalObserver behaves like StrategyOptionMaximizer.
	StrategySignalObserver
	// StrategyEdge always heads east while it can.
	StrategyEdge
	// StrategyAlternate is meant to alternate headings. It currently picks
	// uniformly at random; the lattice package has the alternating variant.
	StrategyAlternate
)

var strategyNames = map[Strategy]string{
	StrategyRandom:          "random",
	StrategyOracular:        "oracular",
	StrategyOracularRandom:  "oracular_random",
	StrategyOptionMaximizer: "option_maximizer",
	StrategySignalObserver:  "signal_observer",
	StrategyEdge:            "edge",
	StrategyAlternate:       "alternate",
}

// ValidStrategies is the set of recognized strategy names.
var ValidStrategies = map[string]bool{
	"random":           true,
	"oracular":         true,
	"oracular_random":  true,
	"option_maximizer": true,
	"signal_observer":  true,
	"edge":             true,
	"alternate":        true,
}

// String returns the strategy's configuration name.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// IsValid reports whether s is one of the declared strategies.
func (s Strategy) IsValid() bool {
	_, ok := strategyNames[s]
	return ok
}

// ParseStrategy converts a configuration name into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownStrategy, name)
}

// AllStrategies returns every strategy in declaration order.
func AllStrategies() []Strategy {
	out := make([]Strategy, 0, len(strategyNames))
	for s := range strategyNames {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ValidStrategyNames returns the sorted list of strategy names.
func ValidStrategyNames() []string {
	names := make([]string, 0, len(ValidStrategies))
	for n := range ValidStrategies {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ChooseNext picks the next move from cur under strategy at time now.
// It returns ok=false when cur has no monotone successor, which on a
// well-formed graph means cur is the destination.
//
// Panics on an undeclared Strategy value: that is a programming error and
// must never be retried.
func ChooseNext(g *Graph, cur Node, strategy Strategy, offsets *SignalOffsets, now float64, end Node, rng *PartitionedRNG) (Candidate, bool) {
	chosen, _, ok := chooseNext(g, cur, strategy, offsets, now, end, rng)
	return chosen, ok
}

// chooseNext is ChooseNext that also returns every candidate considered.
func chooseNext(g *Graph, cur Node, strategy Strategy, offsets *SignalOffsets, now float64, end Node, rng *PartitionedRNG) (Candidate, []Candidate, bool) {
	if !strategy.IsValid() {
		logrus.Panicf("unknown strategy %v", strategy)
	}
	moves := ValidMoves(g, cur, rng.ForSubsystem(SubsystemMoves))
	if len(moves) == 0 {
		return Candidate{}, nil, false
	}
	cands := EvaluateMoves(cur, moves, offsets, now)
	return chooseCandidate(strategy, cands, cur, end, rng.ForSubsystem(SubsystemStrategy)), cands, true
}

// chooseCandidate is the single dispatch point over the closed strategy set.
// cands is never empty.
func chooseCandidate(strategy Strategy, cands []Candidate, cur, end Node, rng *rand.Rand) Candidate {
	switch strategy {
	case StrategyRandom:
		return chooseRandom(cands, rng)
	case StrategyOracular, StrategyOracularRandom:
		return chooseOracular(cands, rng)
	case StrategyOptionMaximizer, StrategySignalObserver:
		return chooseSignalObserver(cands, cur, end, rng)
	case StrategyEdge:
		return chooseEdge(cands, rng)
	case StrategyAlternate:
		return chooseAlternate(cands, rng)
	default:
		logrus.Panicf("unhandled strategy %v", strategy)
		return Candidate{}
	}
}

func chooseRandom(cands []Candidate, rng *rand.Rand) Candidate {
	return cands[rng.Intn(len(cands))]
}

func chooseOracular(cands []Candidate, rng *rand.Rand) Candidate {
	if green := filterGreen(cands); len(green) > 0 {
		return green[rng.Intn(len(green))]
	}
	return minWait(cands)
}

func chooseSignalObserver(cands []Candidate, cur, end Node, rng *rand.Rand) Candidate {
	green := filterGreen(cands)
	switch len(green) {
	case 0:
		return minWait(cands)
	case 1:
		return green[0]
	}

	east, south := RemainingMoves(cur, end)
	var preferred Direction
	switch {
	case east > south:
		preferred = East
	case south > east:
		preferred = South
	default:
		return green[rng.Intn(len(green))]
	}
	for _, c := range green {
		if c.Direction == preferred {
			return c
		}
	}
	return green[rng.Intn(len(green))]
}

func chooseEdge(cands []Candidate, rng *rand.Rand) Candidate {
	var east []Candidate
	for _, c := range cands {
		if c.Direction == East {
			east = append(east, c)
		}
	}
	if len(east) > 0 {
		return east[rng.Intn(len(east))]
	}
	return cands[rng.Intn(len(cands))]
}

// TODO: remember the previous heading in the journey and alternate on it,
// as lattice.ChooseDirection does; until then this matches StrategyRandom.
func chooseAlternate(cands []Candidate, rng *rand.Rand) Candidate {
	return cands[rng.Intn(len(cands))]
}

func filterGreen(cands []Candidate) []Candidate {
	var green []Candidate
	for _, c := range cands {
		if c.Green {
			green = append(green, c)
		}
	}
	return green
}

// minWait returns the first candidate with the smallest wait.
func minWait(cands []Candidate) Candidate {
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Wait < best.Wait {
			best = c
		}
	}
	return best
}
