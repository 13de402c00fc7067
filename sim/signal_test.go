package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaitTime_KnownValues(t *testing.T) {
	tests := []struct {
		t, offset float64
		wantWait  float64
		wantGreen bool
	}{
		{0, 0, 0, true},
		{0.5, 0, 0, true},
		{0.999, 0, 0, true},
		{1, 0, 1, false},
		{1.5, 0, 0.5, false},
		{1.75, 0, 0.25, false},
		{2, 0, 0, true},
		{0, 1.25, 0.75, false},
		{0.75, 1.25, 0, true}, // phase wraps to 0
		{10.5, 0.6, 0.9, false},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.wantWait, WaitTime(tt.t, tt.offset), 1e-12, "t=%v offset=%v", tt.t, tt.offset)
		assert.Equal(t, tt.wantGreen, IsGreen(tt.t, tt.offset), "t=%v offset=%v", tt.t, tt.offset)
	}
}

func TestWaitTime_GreenIffZeroWait(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		now := rng.Float64() * 100
		off := rng.Float64() * SignalPeriod
		w := WaitTime(now, off)
		assert.GreaterOrEqual(t, w, 0.0)
		assert.LessOrEqual(t, w, 1.0)
		assert.Equal(t, IsGreen(now, off), w == 0, "t=%v offset=%v", now, off)
	}
}

func TestWaitTime_ReachesGreen(t *testing.T) {
	// Waiting exactly WaitTime lands on (or within rounding of) a green phase.
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		now := rng.Float64() * 50
		off := rng.Float64() * SignalPeriod
		after := SignalPhase(now+WaitTime(now, off), off)
		assert.True(t, after < 1 || math.Abs(after-SignalPeriod) < 1e-9, "phase after wait = %v", after)
	}
}

func TestSignalPhase_NegativeTimeStaysInRange(t *testing.T) {
	p := SignalPhase(-0.5, 0)
	assert.InDelta(t, 1.5, p, 1e-12)
}

func TestNewEdgeKey_Unordered(t *testing.T) {
	a := Node{0, 0, 0, 0}
	b := Node{0, 0, 1, 0}
	assert.Equal(t, NewEdgeKey(a, b), NewEdgeKey(b, a))
	assert.Equal(t, a, NewEdgeKey(b, a).A)
}

func TestSignalOffsets_CachedPerEdge(t *testing.T) {
	// GIVEN a fresh offset session
	so := NewSignalOffsets(rand.New(rand.NewSource(3)))
	a, b, c := Node{0, 0, 0, 0}, Node{0, 0, 1, 0}, Node{0, 0, 0, 1}

	// WHEN the same edge is queried repeatedly from both ends
	first := so.Offset(a, b)
	again := so.Offset(b, a)
	other := so.Offset(a, c)

	// THEN the offset is drawn once and stays in range
	assert.Equal(t, first, again)
	assert.GreaterOrEqual(t, first, 0.0)
	assert.Less(t, first, SignalPeriod)
	assert.NotEqual(t, first, other)
	assert.Equal(t, 2, so.Len())
}

func TestSignalOffsets_SeededPresetWins(t *testing.T) {
	a, b := Node{0, 0, 0, 0}, Node{0, 0, 1, 0}
	preset := map[EdgeKey]float64{NewEdgeKey(a, b): 1.5}
	so := NewSeededSignalOffsets(rand.New(rand.NewSource(1)), preset)

	assert.Equal(t, 1.5, so.Offset(b, a))
	preset[NewEdgeKey(a, b)] = 0.1 // the session keeps its own copy
	assert.Equal(t, 1.5, so.Offset(a, b))

	snap := so.Snapshot()
	snap[NewEdgeKey(a, b)] = 0.2
	assert.Equal(t, 1.5, so.Offset(a, b))
}

func TestSignalOffsets_SameSeedSameOffsets(t *testing.T) {
	a, b := Node{1, 1, 0, 0}, Node{1, 1, 1, 0}
	s1 := NewSignalOffsets(newTestRNG(5).ForSubsystem(SubsystemSignals))
	s2 := NewSignalOffsets(newTestRNG(5).ForSubsystem(SubsystemSignals))
	assert.Equal(t, s1.Offset(a, b), s2.Offset(a, b))
}
