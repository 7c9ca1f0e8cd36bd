package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelSteps captures every node-choice decision.
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

// EpisodeTrace collects decision records during a batch episode.
type EpisodeTrace struct {
	Config TraceConfig
	Steps  []StepRecord
}

// NewEpisodeTrace creates an EpisodeTrace ready for recording.
func NewEpisodeTrace(config TraceConfig) *EpisodeTrace {
	return &EpisodeTrace{
		Config: config,
		Steps:  make([]StepRecord, 0),
	}
}

// RecordStep appends a decision record. No-op below TraceLevelSteps.
func (et *EpisodeTrace) RecordStep(record StepRecord) {
	if et.Config.Level != TraceLevelSteps {
		return
	}
	et.Steps = append(et.Steps, record)
}
