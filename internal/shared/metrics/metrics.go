package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	analysesCreatedTotal       atomic.Uint64
	analysesPersistFailedTotal atomic.Uint64
	historyCorruptDroppedTotal atomic.Uint64

	// The pipeline is pure in-memory computation, so buckets are tight.
	analyzeDuration = newHistogram([]float64{1, 2, 5, 10, 25, 50, 100, 250, 500})
)

// IncAnalysisCreated increments the created-analyses counter.
func IncAnalysisCreated() {
	analysesCreatedTotal.Add(1)
}

// IncAnalysisPersistFailed increments the failed-persist counter.
func IncAnalysisPersistFailed() {
	analysesPersistFailedTotal.Add(1)
}

// AddHistoryCorruptDropped records entries dropped during a load sweep.
func AddHistoryCorruptDropped(n int) {
	if n > 0 {
		historyCorruptDroppedTotal.Add(uint64(n))
	}
}

// ObserveAnalyzeDurationMs records one analysis pipeline duration.
func ObserveAnalyzeDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	analyzeDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "analyses_created_total", "Total analyses created", analysesCreatedTotal.Load())
	writeCounter(&buf, "analyses_persist_failed_total", "Total analyses that failed to persist", analysesPersistFailedTotal.Load())
	writeCounter(&buf, "history_corrupt_dropped_total", "Total corrupt history entries dropped on load", historyCorruptDroppedTotal.Load())
	writeHistogram(&buf, "analyze_duration_ms", "Analysis pipeline duration in milliseconds", analyzeDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
