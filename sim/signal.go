package sim

import (
	"math"
	"math/rand"
)

const (
	// SignalPeriod is the length of one full green+red cycle, in seconds.
	SignalPeriod = 2.0
	// greenDuration is the green (walk) share of each cycle.
	greenDuration = SignalPeriod / 2
)

// SignalPhase returns the position of a signal within its cycle at time t,
// always in [0, SignalPeriod).
func SignalPhase(t, offset float64) float64 {
	phase := math.Mod(t+offset, SignalPeriod)
	if phase < 0 {
		phase += SignalPeriod
	}
	return phase
}

// IsGreen reports whether a signal with the given phase offset shows walk at time t.
func IsGreen(t, offset float64) bool {
	return SignalPhase(t, offset) < greenDuration
}

// WaitTime returns the smallest non-negative delay after which the signal is
// green. It is zero exactly when IsGreen(t, offset) is true.
func WaitTime(t, offset float64) float64 {
	phase := SignalPhase(t, offset)
	if phase < greenDuration {
		return 0
	}
	return SignalPeriod - phase
}

// EdgeKey identifies an undirected edge independently of traversal direction.
type EdgeKey struct {
	A, B Node
}

// NewEdgeKey returns the canonical key for the edge between u and v.
func NewEdgeKey(u, v Node) EdgeKey {
	if v.Less(u) {
		u, v = v, u
	}
	return EdgeKey{A: u, B: v}
}

// SignalOffsets is the per-journey table of signal phase offsets. An offset
// is drawn uniformly from [0, SignalPeriod) the first time its edge is
// observed and reused for the rest of the journey.
//
// Not safe for concurrent use; a SignalOffsets belongs to one journey.
type SignalOffsets struct {
	rng     *rand.Rand
	offsets map[EdgeKey]float64
}

// NewSignalOffsets creates an empty offset session drawing from rng.
func NewSignalOffsets(rng *rand.Rand) *SignalOffsets {
	return &SignalOffsets{
		rng:     rng,
		offsets: make(map[EdgeKey]float64),
	}
}

// NewSeededSignalOffsets creates a session pre-populated with fixed offsets.
// Edges absent from preset are still drawn lazily from rng. Used to replay a
// single signal configuration across several strategies.
func NewSeededSignalOffsets(rng *rand.Rand, preset map[EdgeKey]float64) *SignalOffsets {
	so := NewSignalOffsets(rng)
	for k, v := range preset {
		so.offsets[k] = v
	}
	return so
}

// Offset returns the cached offset for the edge (u, v), drawing it on first use.
func (so *SignalOffsets) Offset(u, v Node) float64 {
	key := NewEdgeKey(u, v)
	if off, ok := so.offsets[key]; ok {
		return off
	}
	off := so.rng.Float64() * SignalPeriod
	so.offsets[key] = off
	return off
}

// Len returns the number of offsets drawn or preset so far.
func (so *SignalOffsets) Len() int {
	return len(so.offsets)
}

// Snapshot returns a copy of all offsets observed so far.
func (so *SignalOffsets) Snapshot() map[EdgeKey]float64 {
	out := make(map[EdgeKey]float64, len(so.offsets))
	for k, v := range so.offsets {
		out[k] = v
	}
	return out
}
