package trace

// TraceSummary aggregates statistics from a JourneyTrace.
type TraceSummary struct {
	TotalSteps     int
	CrossingSteps  int
	GreenOnArrival int     // crossing steps taken without waiting
	TotalWait      float64 // sum of waits over all steps
	MovingTime     float64 // sum of edge lengths over all steps
	MaxWait        float64
	GreenRatio     float64        // GreenOnArrival / CrossingSteps; 0 if no crossings
	Directions     map[string]int // heading → count of steps
}

// Summarize computes aggregate statistics from a JourneyTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(jt *JourneyTrace) *TraceSummary {
	summary := &TraceSummary{
		Directions: make(map[string]int),
	}
	if jt == nil {
		return summary
	}

	summary.TotalSteps = len(jt.Steps)
	for _, s := range jt.Steps {
		summary.Directions[s.Direction]++
		summary.TotalWait += s.Wait
		summary.MovingTime += s.Length
		if s.Wait > summary.MaxWait {
			summary.MaxWait = s.Wait
		}
		if s.EdgeType == "crossing" {
			summary.CrossingSteps++
			if s.Wait == 0 {
				summary.GreenOnArrival++
			}
		}
	}
	if summary.CrossingSteps > 0 {
		summary.GreenRatio = float64(summary.GreenOnArrival) / float64(summary.CrossingSteps)
	}

	return summary
}
