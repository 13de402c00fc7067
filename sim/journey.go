package sim

import (
	"container/heap"

	"github.com/sirupsen/logrus"

	"github.com/joebhakim/street-crossing-sim/sim/trace"
)

// EventQueue implements heap.Interface and orders events by timestamp.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []Event

func (eq EventQueue) Len() int           { return len(eq) }
func (eq EventQueue) Less(i, j int) bool { return eq[i].Timestamp() < eq[j].Timestamp() }
func (eq EventQueue) Swap(i, j int)      { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(Event))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// JourneyState is the state of a journey's two-state machine plus the
// failure sink.
type JourneyState string

const (
	StateTraveling JourneyState = "traveling"
	StateArrived   JourneyState = "arrived"
	StateFailed    JourneyState = "failed"
)

// JourneyResult is the immutable outcome of one simulated journey.
type JourneyResult struct {
	Time    float64         // elapsed simulated seconds
	Nodes   []Node          // visited nodes, start first
	Edges   []EdgeSignature // signature of every traversed edge, in order
	Success bool            // true iff State == StateArrived
	State   JourneyState
	Key     SimulationKey // key the journey's randomness was derived from
}

// Signature returns the path signature of the journey.
func (r JourneyResult) Signature() Signature {
	return PathSignature(r.Edges)
}

// JourneyOptions configures a single journey.
type JourneyOptions struct {
	// RNG is the journey's private randomness. Nil means key 0.
	RNG *PartitionedRNG
	// Offsets pre-seeds the signal session. Nil means a fresh session drawn
	// from the RNG's signals subsystem.
	Offsets *SignalOffsets
	// Trace receives one StepRecord per move when enabled.
	Trace *trace.JourneyTrace
}

// Journey is the discrete-event state of one pedestrian walking from start
// to end.
type Journey struct {
	Clock      float64
	EventQueue EventQueue
	State      JourneyState

	graph    *Graph
	start    Node
	end      Node
	strategy Strategy
	rng      *PartitionedRNG
	offsets  *SignalOffsets
	trace    *trace.JourneyTrace

	nodes []Node
	edges []EdgeSignature
}

// NewJourney prepares a journey; call Run to simulate it.
func NewJourney(g *Graph, start, end Node, strategy Strategy, opts JourneyOptions) *Journey {
	rng := opts.RNG
	if rng == nil {
		rng = NewPartitionedRNG(NewSimulationKey(0))
	}
	offsets := opts.Offsets
	if offsets == nil {
		offsets = NewSignalOffsets(rng.ForSubsystem(SubsystemSignals))
	}
	return &Journey{
		EventQueue: make(EventQueue, 0, 1),
		State:      StateTraveling,
		graph:      g,
		start:      start,
		end:        end,
		strategy:   strategy,
		rng:        rng,
		offsets:    offsets,
		trace:      opts.Trace,
	}
}

// Schedule pushes an event into the journey's EventQueue.
func (j *Journey) Schedule(ev Event) {
	heap.Push(&j.EventQueue, ev)
}

// Offsets exposes the journey's signal session, e.g. for replaying signal
// colors along the finished timeline.
func (j *Journey) Offsets() *SignalOffsets {
	return j.offsets
}

// Run simulates the journey to arrival or failure and returns its result.
func (j *Journey) Run() JourneyResult {
	if !j.graph.HasNode(j.start) || !j.graph.HasNode(j.end) {
		logrus.Errorf("journey endpoints %v -> %v are not in the graph", j.start, j.end)
		j.State = StateFailed
		return j.result()
	}

	j.nodes = append(j.nodes, j.start)
	j.Schedule(&DecisionEvent{time: 0, Node: j.start})
	for len(j.EventQueue) > 0 {
		ev := heap.Pop(&j.EventQueue).(Event)
		j.Clock = ev.Timestamp()
		ev.Execute(j)
	}
	if j.State == StateTraveling {
		// The queue can only drain without a terminal state if an event
		// forgot to reschedule.
		logrus.Errorf("journey %v -> %v stalled at t=%.3f", j.start, j.end, j.Clock)
		j.State = StateFailed
	}
	return j.result()
}

// Decide handles the pedestrian standing at node at time now.
func (j *Journey) Decide(node Node, now float64) {
	if node == j.end {
		j.State = StateArrived
		return
	}
	cand, cands, ok := chooseNext(j.graph, node, j.strategy, j.offsets, now, j.end, j.rng)
	if !ok {
		logrus.Warnf("dead end at %v (t=%.3f) before reaching %v under %s", node, now, j.end, j.strategy)
		j.State = StateFailed
		return
	}

	wait := 0.0
	if cand.Edge.Type == EdgeCrossing {
		wait = cand.Wait
	}
	sig := cand.Edge.Signature()
	if j.trace.Enabled() {
		j.trace.RecordStep(trace.StepRecord{
			Step:        len(j.edges),
			Clock:       now,
			From:        node.String(),
			To:          cand.Next.String(),
			Direction:   string(cand.Direction),
			EdgeType:    string(sig.Type),
			Orientation: string(sig.Orientation),
			Wait:        wait,
			Length:      cand.Edge.Length,
			Green:       cand.Green,
			Candidates:  len(cands),
			GreenCount:  len(filterGreen(cands)),
		})
	}
	j.edges = append(j.edges, sig)
	j.nodes = append(j.nodes, cand.Next)
	j.Schedule(&DecisionEvent{time: now + wait + cand.Edge.Length, Node: cand.Next})
}

func (j *Journey) result() JourneyResult {
	return JourneyResult{
		Time:    j.Clock,
		Nodes:   append([]Node(nil), j.nodes...),
		Edges:   append([]EdgeSignature(nil), j.edges...),
		Success: j.State == StateArrived,
		State:   j.State,
		Key:     j.rng.Key(),
	}
}

// SimulateJourney runs one journey from start to end under strategy.
func SimulateJourney(g *Graph, start, end Node, strategy Strategy, opts JourneyOptions) JourneyResult {
	return NewJourney(g, start, end, strategy, opts).Run()
}
