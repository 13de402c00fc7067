package trace

// TraceLevel controls the verbosity of journey tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelSteps captures every move decision.
	TraceLevelSteps TraceLevel = "steps"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:  true,
	TraceLevelSteps: true,
	"":              true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// JourneyTrace collects step records during one journey.
type JourneyTrace struct {
	Config TraceConfig
	Steps  []StepRecord
}

// NewJourneyTrace creates a JourneyTrace ready for recording.
func NewJourneyTrace(config TraceConfig) *JourneyTrace {
	return &JourneyTrace{
		Config: config,
		Steps:  make([]StepRecord, 0),
	}
}

// Enabled reports whether records should be collected. Safe on nil.
func (jt *JourneyTrace) Enabled() bool {
	return jt != nil && jt.Config.Level == TraceLevelSteps
}

// RecordStep appends a step record. No-op when tracing is disabled.
func (jt *JourneyTrace) RecordStep(record StepRecord) {
	if !jt.Enabled() {
		return
	}
	jt.Steps = append(jt.Steps, record)
}

// At returns the index of the step in progress at time t: the last step whose
// decision clock is <= t. It returns -1 before the first decision.
func (jt *JourneyTrace) At(t float64) int {
	idx := -1
	for i, s := range jt.Steps {
		if s.Clock > t {
			break
		}
		idx = i
	}
	return idx
}
