// Package lattice is a reduced model of the street-crossing walk: the
// pedestrian needs a fixed number of east and south crossings, every
// crossing takes one second, and each decision faces two freshly drawn
// signals. It ignores the city graph entirely and serves as a quick
// analytical baseline for the graph simulator in package sim.
package lattice

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/joebhakim/street-crossing-sim/sim"
)

// crossingTime is the duration of one crossing.
const crossingTime = 1.0

// waitEpsilon is the tolerance under which two waits count as equal.
const waitEpsilon = 1e-9

// ChooseDirection picks the heading of the next crossing given the
// remaining east/south crossings, the waits both signals currently impose,
// and the previous heading ("" before the first move).
//
// Unlike sim.StrategyAlternate, StrategyAlternate here really alternates.
func ChooseDirection(strategy sim.Strategy, eastLeft, southLeft int, waitEast, waitSouth float64, prev sim.Direction, rng *rand.Rand) sim.Direction {
	if eastLeft == 0 {
		return sim.South
	}
	if southLeft == 0 {
		return sim.East
	}
	balance := sim.South
	if eastLeft > southLeft {
		balance = sim.East
	}

	switch strategy {
	case sim.StrategyOracular, sim.StrategyOracularRandom:
		return shorterWait(waitEast, waitSouth, balance)
	case sim.StrategyOptionMaximizer, sim.StrategySignalObserver:
		greenEast, greenSouth := waitEast == 0, waitSouth == 0
		switch {
		case greenEast && !greenSouth:
			return sim.East
		case greenSouth && !greenEast:
			return sim.South
		case greenEast && greenSouth:
			return balance
		default:
			return shorterWait(waitEast, waitSouth, balance)
		}
	case sim.StrategyRandom:
		if rng.Intn(2) == 0 {
			return sim.East
		}
		return sim.South
	case sim.StrategyEdge:
		return sim.East
	case sim.StrategyAlternate:
		switch prev {
		case sim.East:
			return sim.South
		case sim.South:
			return sim.East
		default:
			return sim.East
		}
	default:
		logrus.Panicf("unknown strategy %v", strategy)
		return ""
	}
}

func shorterWait(waitEast, waitSouth float64, tie sim.Direction) sim.Direction {
	switch {
	case waitEast < waitSouth-waitEpsilon:
		return sim.East
	case waitSouth < waitEast-waitEpsilon:
		return sim.South
	default:
		return tie
	}
}

// Run walks eastCrossings east and southCrossings south and returns the
// elapsed time. Signal offsets are redrawn before every decision.
func Run(eastCrossings, southCrossings int, strategy sim.Strategy, rng *sim.PartitionedRNG) float64 {
	signals := rng.ForSubsystem(sim.SubsystemSignals)
	choices := rng.ForSubsystem(sim.SubsystemStrategy)

	t := 0.0
	eastLeft, southLeft := eastCrossings, southCrossings
	var prev sim.Direction
	for eastLeft+southLeft > 0 {
		offEast := signals.Float64() * sim.SignalPeriod
		offSouth := signals.Float64() * sim.SignalPeriod
		waitEast, waitSouth := sim.WaitTime(t, offEast), sim.WaitTime(t, offSouth)

		d := ChooseDirection(strategy, eastLeft, southLeft, waitEast, waitSouth, prev, choices)
		if d == sim.East {
			t += waitEast + crossingTime
			eastLeft--
		} else {
			t += waitSouth + crossingTime
			southLeft--
		}
		prev = d
	}
	return t
}

// RunMany runs n independent walks, walk i keyed by sim.JourneyKey(seed, i).
func RunMany(eastCrossings, southCrossings int, strategy sim.Strategy, n int, seed int64) []float64 {
	times := make([]float64, n)
	batch := sim.NewSimulationKey(seed)
	for i := range times {
		times[i] = Run(eastCrossings, southCrossings, strategy, sim.NewPartitionedRNG(sim.JourneyKey(batch, i)))
	}
	logrus.Debugf("lattice %dx%d %s: %d walks", eastCrossings, southCrossings, strategy, n)
	return times
}
