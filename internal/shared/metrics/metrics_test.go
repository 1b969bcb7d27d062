package metrics

import (
	"strings"
	"testing"
)

func TestRenderIncludesAllSeries(t *testing.T) {
	IncAnalysisCreated()
	IncAnalysisPersistFailed()
	AddHistoryCorruptDropped(3)
	ObserveAnalyzeDurationMs(4)

	out := Render()
	for _, name := range []string{
		"analyses_created_total",
		"analyses_persist_failed_total",
		"history_corrupt_dropped_total",
		"analyze_duration_ms_bucket",
		"analyze_duration_ms_sum",
		"analyze_duration_ms_count",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("missing series %s in:\n%s", name, out)
		}
	}
	if !strings.Contains(out, `analyze_duration_ms_bucket{le="+Inf"}`) {
		t.Fatalf("missing +Inf bucket:\n%s", out)
	}
}

func TestAddHistoryCorruptDroppedIgnoresNonPositive(t *testing.T) {
	before := Render()
	AddHistoryCorruptDropped(0)
	AddHistoryCorruptDropped(-2)
	if Render() != before {
		t.Fatal("non-positive deltas must not change counters")
	}
}
