package pipeline

import "sync"

// Metrics counts processed and failed records per stage driver. Counters only
// grow; the ops API exposes a snapshot.
type Metrics struct {
	mu        sync.Mutex
	processed map[string]int64
	failures  map[string]int64
}

// NewMetrics creates an empty counter set
func NewMetrics() *Metrics {
	return &Metrics{
		processed: make(map[string]int64),
		failures:  make(map[string]int64),
	}
}

// RecordSuccess increments the processed counter for a stage
func (m *Metrics) RecordSuccess(stage string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processed[stage]++
}

// RecordFailure increments the failure counter for a stage
func (m *Metrics) RecordFailure(stage string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[stage]++
}

// MetricsSnapshot is a point-in-time copy of the stage counters
type MetricsSnapshot struct {
	Processed map[string]int64 `json:"processed"`
	Failures  map[string]int64 `json:"failures"`
}

// Snapshot copies the counters for reporting
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := MetricsSnapshot{
		Processed: make(map[string]int64, len(m.processed)),
		Failures:  make(map[string]int64, len(m.failures)),
	}
	for stage, n := range m.processed {
		snap.Processed[stage] = n
	}
	for stage, n := range m.failures {
		snap.Failures[stage] = n
	}
	return snap
}
