package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFatal   ResultLabel = "fatal"
)

// OutcomeLabel is the final status of a build.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeFailed  OutcomeLabel = "failed"
)

// Output kinds counted by IncOutput.
const (
	OutputPage  = "page"
	OutputEntry = "entry"
	OutputIndex = "index"
	OutputFeed  = "feed"
)

// Recorder defines observability hooks for build and stage metrics.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	IncBuildOutcome(outcome OutcomeLabel)
	// IncOutput counts one written file of the given kind.
	IncOutput(kind string)
	// IncDraft counts a draft page handled under the given policy.
	IncDraft(policy string)
	SetListedEntries(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)         {}
func (NoopRecorder) IncStageResult(string, ResultLabel)         {}
func (NoopRecorder) IncBuildOutcome(OutcomeLabel)               {}
func (NoopRecorder) IncOutput(string)                           {}
func (NoopRecorder) IncDraft(string)                            {}
func (NoopRecorder) SetListedEntries(int)                       {}
