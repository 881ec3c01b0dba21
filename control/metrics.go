// File: control/metrics.go
// Author: bytewell <dev@bytewell.io>
//
// Engine counters. Counters only ever grow and are read through
// point-in-time snapshots.

package control

import "sync/atomic"

// Metrics aggregates engine activity counters. All methods are safe
// for concurrent use.
type Metrics struct {
	findCalls    atomic.Int64
	countCalls   atomic.Int64
	scannedBytes atomic.Int64
	views        atomic.Int64
	mappedFiles  atomic.Int64
}

// NewMetrics returns a zeroed counter set.
func NewMetrics() *Metrics { return &Metrics{} }

// RecordFind notes one find-class backend call over n haystack bytes.
func (m *Metrics) RecordFind(n int) {
	m.findCalls.Add(1)
	m.scannedBytes.Add(int64(n))
}

// RecordCount notes one count-class backend call over n haystack bytes.
func (m *Metrics) RecordCount(n int) {
	m.countCalls.Add(1)
	m.scannedBytes.Add(int64(n))
}

// RecordView notes a view constructed through the engine.
func (m *Metrics) RecordView() { m.views.Add(1) }

// RecordMappedFile notes a file mapped through the engine.
func (m *Metrics) RecordMappedFile() { m.mappedFiles.Add(1) }

// Snapshot returns the current counter values keyed by stable names.
func (m *Metrics) Snapshot() map[string]int64 {
	return map[string]int64{
		"find_calls":    m.findCalls.Load(),
		"count_calls":   m.countCalls.Load(),
		"scanned_bytes": m.scannedBytes.Load(),
		"views":         m.views.Load(),
		"mapped_files":  m.mappedFiles.Load(),
	}
}
