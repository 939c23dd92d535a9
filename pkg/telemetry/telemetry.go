// Package telemetry provides a fire-and-forget call recording sink for
// observability. Recording can never fail and never affects the outcome
// of the operation being observed.
package telemetry

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// Monitor records the outcome of externally visible calls.
type Monitor interface {
	// RecordCall registers one completed call with its status and duration.
	RecordCall(method, route string, status int, duration time.Duration)
}

// Snapshot is a point-in-time view of recorded call counters.
type Snapshot struct {
	CallsTotal   uint64 `json:"calls_total"`
	CallsSuccess uint64 `json:"calls_success"`
	CallsFailed  uint64 `json:"calls_failed"`
}

// Recorder is the default Monitor implementation: atomic counters plus a
// structured log line per call.
type Recorder struct {
	logger  *slog.Logger
	total   atomic.Uint64
	success atomic.Uint64
	failed  atomic.Uint64
}

// New creates a Monitor that keeps atomic counters and logs each call.
func New(logger *slog.Logger) *Recorder {
	return &Recorder{
		logger: logger.With("system", "telemetry"),
	}
}

func (m *Recorder) RecordCall(method, route string, status int, duration time.Duration) {
	m.total.Add(1)
	if status < 400 {
		m.success.Add(1)
	} else {
		m.failed.Add(1)
	}

	m.logger.Info(
		"call recorded",
		"method", method,
		"route", route,
		"status", status,
		"duration", duration,
	)
}

// Snapshot returns the current counter values.
func (m *Recorder) Snapshot() Snapshot {
	return Snapshot{
		CallsTotal:   m.total.Load(),
		CallsSuccess: m.success.Load(),
		CallsFailed:  m.failed.Load(),
	}
}

type noop struct{}

func (noop) RecordCall(string, string, int, time.Duration) {}

// Noop returns a Monitor that discards everything. Intended for tests.
func Noop() Monitor {
	return noop{}
}
