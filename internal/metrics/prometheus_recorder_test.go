package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveStageDuration("blog", 150*time.Millisecond)
	pr.ObserveBuildDuration(500 * time.Millisecond)
	pr.IncStageResult("blog", ResultSuccess)
	pr.IncBuildOutcome(OutcomeSuccess)
	pr.IncOutput(OutputEntry)
	pr.IncOutput(OutputEntry)
	pr.IncDraft("build")
	pr.SetListedEntries(4)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				values[mf.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[mf.GetName()] = m.GetGauge().GetValue()
			}
		}
	}
	assert.InDelta(t, 2, values["sitebuilder_outputs_written_total"], 0)
	assert.InDelta(t, 1, values["sitebuilder_drafts_total"], 0)
	assert.InDelta(t, 4, values["sitebuilder_listed_entries"], 0)
	assert.InDelta(t, 1, values["sitebuilder_build_outcomes_total"], 0)
}

func TestNilPrometheusRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.IncOutput(OutputPage)
		pr.ObserveBuildDuration(time.Second)
		pr.SetListedEntries(1)
	})
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncOutput(OutputFeed)

	path := filepath.Join(t.TempDir(), "sitebuilder.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `sitebuilder_outputs_written_total{kind="feed"} 1`)
}

func TestNoopRecorderSatisfiesInterface(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.IncOutput(OutputPage)
	r.IncBuildOutcome(OutcomeFailed)
}
