package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for all journey events.
// Each event has a Timestamp (in simulated seconds) and an Execute method
// that advances journey state when invoked.
type Event interface {
	Timestamp() float64
	Execute(*Journey)
}

// DecisionEvent fires when the pedestrian stands at Node and must pick the
// next move (or has arrived).
type DecisionEvent struct {
	time float64 // simulated time of arrival at Node
	Node Node
}

// Timestamp returns the scheduled time of the DecisionEvent.
func (e *DecisionEvent) Timestamp() float64 {
	return e.time
}

// Execute consults the strategy and schedules the decision at the next node.
func (e *DecisionEvent) Execute(j *Journey) {
	logrus.Debugf("<< Decision at %v, t=%.3f", e.Node, e.time)
	j.Decide(e.Node, e.time)
}
