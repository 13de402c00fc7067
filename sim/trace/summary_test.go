package trace

import "testing"

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	jt := NewJourneyTrace(TraceConfig{Level: TraceLevelSteps})

	// WHEN summarized
	summary := Summarize(jt)

	// THEN all counts are zero
	if summary.TotalSteps != 0 || summary.CrossingSteps != 0 {
		t.Errorf("expected 0 steps, got %d/%d", summary.TotalSteps, summary.CrossingSteps)
	}
	if summary.TotalWait != 0 || summary.MovingTime != 0 || summary.GreenRatio != 0 {
		t.Error("expected zero timing values")
	}
	if len(summary.Directions) != 0 {
		t.Error("expected empty direction distribution")
	}
}

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalSteps != 0 || summary.Directions == nil {
		t.Error("nil trace must summarize to zero values with a usable map")
	}
}

func TestSummarize_PopulatedTrace_CorrectTotals(t *testing.T) {
	// GIVEN a crossing with no wait, a block walk, and a crossing with a wait
	jt := NewJourneyTrace(TraceConfig{Level: TraceLevelSteps})
	jt.RecordStep(StepRecord{Direction: "E", EdgeType: "crossing", Wait: 0, Length: 1})
	jt.RecordStep(StepRecord{Direction: "E", EdgeType: "block", Wait: 0, Length: 3})
	jt.RecordStep(StepRecord{Direction: "S", EdgeType: "crossing", Wait: 0.75, Length: 0.5})

	// WHEN summarized
	summary := Summarize(jt)

	// THEN totals and ratios match
	if summary.TotalSteps != 3 {
		t.Errorf("expected 3 steps, got %d", summary.TotalSteps)
	}
	if summary.CrossingSteps != 2 || summary.GreenOnArrival != 1 {
		t.Errorf("expected 2 crossings with 1 green, got %d/%d", summary.CrossingSteps, summary.GreenOnArrival)
	}
	if summary.GreenRatio != 0.5 {
		t.Errorf("expected green ratio 0.5, got %v", summary.GreenRatio)
	}
	if summary.TotalWait != 0.75 || summary.MaxWait != 0.75 {
		t.Errorf("expected wait 0.75, got total=%v max=%v", summary.TotalWait, summary.MaxWait)
	}
	if summary.MovingTime != 4.5 {
		t.Errorf("expected moving time 4.5, got %v", summary.MovingTime)
	}
	if summary.Directions["E"] != 2 || summary.Directions["S"] != 1 {
		t.Errorf("unexpected direction counts %v", summary.Directions)
	}
}
