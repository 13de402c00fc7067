package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible journey or batch.
// Two journeys with the same SimulationKey on the same graph, endpoints
// and strategy MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemSignals is the RNG subsystem for signal phase offsets.
	// Uses the journey key directly so a pre-computed offset table can be
	// reproduced from the key alone.
	SubsystemSignals = "signals"

	// SubsystemMoves is the RNG subsystem for the east/south coin flip
	// applied to neighbors that qualify as both.
	SubsystemMoves = "moves"

	// SubsystemStrategy is the RNG subsystem for strategy tie-breaks and
	// uniform choices.
	SubsystemStrategy = "strategy"
)

// SubsystemJourney returns the derivation label for journey i of a batch.
func SubsystemJourney(i int) string {
	return fmt.Sprintf("journey_%d", i)
}

// SubsystemBatch returns the derivation label for a strategy's batch in a
// cross-strategy comparison.
func SubsystemBatch(strategy Strategy) string {
	return "batch_" + strategy.String()
}

// JourneyKey derives the key of journey i from a batch key. Journeys of one
// batch never share a random stream, so they may run on any goroutine.
func JourneyKey(batch SimulationKey, i int) SimulationKey {
	return SimulationKey(int64(batch) ^ fnv1a64(SubsystemJourney(i)))
}

// BatchKey derives the key of a strategy's batch from a comparison key.
func BatchKey(base SimulationKey, strategy Strategy) SimulationKey {
	return SimulationKey(int64(base) ^ fnv1a64(SubsystemBatch(strategy)))
}

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemSignals: uses the key directly
//   - For all other subsystems: key XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Each journey owns exactly one
// PartitionedRNG and runs on a single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	var derivedSeed int64
	if name == SubsystemSignals {
		derivedSeed = int64(p.key)
	} else {
		derivedSeed = int64(p.key) ^ fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
