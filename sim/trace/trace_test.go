package trace

import (
	"testing"
)

func TestJourneyTrace_RecordStep_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for steps
	jt := NewJourneyTrace(TraceConfig{Level: TraceLevelSteps})

	// WHEN a step record is recorded
	jt.RecordStep(StepRecord{
		Step:      0,
		Clock:     0,
		From:      "(0,0,0,0)",
		To:        "(0,0,1,0)",
		Direction: "E",
		EdgeType:  "crossing",
		Wait:      0.5,
		Length:    1,
	})

	// THEN the trace contains one step record with correct data
	if len(jt.Steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(jt.Steps))
	}
	if jt.Steps[0].To != "(0,0,1,0)" {
		t.Errorf("expected destination (0,0,1,0), got %s", jt.Steps[0].To)
	}
	if jt.Steps[0].Arrival() != 1.5 {
		t.Errorf("expected arrival 1.5, got %v", jt.Steps[0].Arrival())
	}
}

func TestJourneyTrace_LevelNone_DropsRecords(t *testing.T) {
	// GIVEN a trace with tracing disabled
	jt := NewJourneyTrace(TraceConfig{Level: TraceLevelNone})

	// WHEN a step is recorded
	jt.RecordStep(StepRecord{Step: 0})

	// THEN nothing is kept
	if len(jt.Steps) != 0 {
		t.Errorf("expected 0 steps, got %d", len(jt.Steps))
	}
}

func TestJourneyTrace_NilIsDisabled(t *testing.T) {
	var jt *JourneyTrace
	if jt.Enabled() {
		t.Error("nil trace must report disabled")
	}
	jt.RecordStep(StepRecord{}) // must not panic
}

func TestJourneyTrace_At_FindsStepInProgress(t *testing.T) {
	// GIVEN three steps decided at t=0, 1.5 and 4
	jt := NewJourneyTrace(TraceConfig{Level: TraceLevelSteps})
	jt.RecordStep(StepRecord{Step: 0, Clock: 0, Wait: 0.5, Length: 1})
	jt.RecordStep(StepRecord{Step: 1, Clock: 1.5, Length: 2.5})
	jt.RecordStep(StepRecord{Step: 2, Clock: 4, Length: 1})

	tests := []struct {
		t    float64
		want int
	}{
		{-1, -1},
		{0, 0},
		{1.49, 0},
		{1.5, 1},
		{3.9, 1},
		{10, 2},
	}
	for _, tt := range tests {
		if got := jt.At(tt.t); got != tt.want {
			t.Errorf("At(%v) = %d, want %d", tt.t, got, tt.want)
		}
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"steps", true},
		{"", true}, // empty defaults to none
		{"decisions", false},
		{"foobar", false},
		{"STEPS", false}, // case-sensitive
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := IsValidTraceLevel(tt.level); got != tt.valid {
				t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.valid)
			}
		})
	}
}
