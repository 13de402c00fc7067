// Package trace provides per-step decision recording for single journeys.
// This package has no dependencies on sim/ — it stores pure data types, so
// animation and reporting collaborators can consume it directly.
package trace

// StepRecord captures one move decision of a journey.
type StepRecord struct {
	Step        int     // zero-based index of the move within the journey
	Clock       float64 // simulated time when the decision was taken
	From        string  // node label the move starts at
	To          string  // node label the move ends at
	Direction   string  // "E" or "S"
	EdgeType    string  // "crossing" or "block"
	Orientation string  // "vertical" or "horizontal"
	Wait        float64 // time spent waiting for green before stepping off
	Length      float64 // traversal time of the edge
	Green       bool    // signal showed walk at decision time
	Candidates  int     // number of valid moves considered
	GreenCount  int     // number of those that were green
}

// Departure returns the time the pedestrian steps onto the edge.
func (r StepRecord) Departure() float64 {
	return r.Clock + r.Wait
}

// Arrival returns the time the pedestrian reaches To.
func (r StepRecord) Arrival() float64 {
	return r.Clock + r.Wait + r.Length
}
