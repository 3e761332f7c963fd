package orchestrator

import (
	"math"
	"sync"
	"time"

	"companion-srv/internal/model"
)

// backendHealth is the mutable record for one backend. All access
// goes through the tracker's lock.
type backendHealth struct {
	status        string
	lastCheck     time.Time
	responseTimes []float64 // ms, bounded by MaxHistorySamples
	successCount  int
	errorCount    int
	lastError     string

	breakerFailures    int
	breakerLastFailure time.Time
	breakerOpen        bool
}

// HealthTracker owns all per-backend health and circuit-breaker state.
// It is constructed explicitly and injected, so tests can assert on
// isolated instances. Safe for concurrent use.
type HealthTracker struct {
	mu       sync.Mutex
	backends map[string]*backendHealth
	now      func() time.Time
}

// NewHealthTracker creates a tracker with one record per known
// backend, all starting healthy.
func NewHealthTracker() *HealthTracker {
	return NewHealthTrackerWithClock(time.Now)
}

// NewHealthTrackerWithClock injects the clock for deterministic
// cooldown tests.
func NewHealthTrackerWithClock(now func() time.Time) *HealthTracker {
	backends := make(map[string]*backendHealth, len(model.Backends))
	for _, name := range model.Backends {
		backends[name] = &backendHealth{
			status:    StatusHealthy,
			lastCheck: now(),
		}
	}
	return &HealthTracker{
		backends: backends,
		now:      now,
	}
}

// RecordSuccess appends a response-time sample and refreshes status
// from the rolling average.
func (t *HealthTracker) RecordSuccess(backend string, elapsed time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	h, ok := t.backends[backend]
	if !ok {
		return
	}

	h.lastCheck = t.now()
	h.successCount++

	h.responseTimes = append(h.responseTimes, float64(elapsed.Milliseconds()))
	if len(h.responseTimes) > MaxHistorySamples {
		h.responseTimes = h.responseTimes[1:]
	}

	if avg(h.responseTimes) < HealthyAvgMs {
		h.status = StatusHealthy
	} else {
		h.status = StatusDegraded
	}
}

// RecordFailure updates error bookkeeping and feeds the circuit
// breaker.
func (t *HealthTracker) RecordFailure(backend string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	h, ok := t.backends[backend]
	if !ok {
		return
	}

	h.lastCheck = t.now()
	h.errorCount++
	if err != nil {
		h.lastError = err.Error()
	}

	availability := availabilityPct(h)
	switch {
	case availability < UnavailableAvailability:
		h.status = StatusUnavailable
	case availability < DegradedAvailability:
		h.status = StatusDegraded
	default:
		h.status = StatusHealthy
	}

	h.breakerFailures++
	h.breakerLastFailure = t.now()
	if h.breakerFailures >= BreakerThreshold {
		h.breakerOpen = true
	}
}

// BreakerOpen reports whether the backend's circuit is open. The
// cooldown reset is evaluated lazily here, not by a background timer.
func (t *HealthTracker) BreakerOpen(backend string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	h, ok := t.backends[backend]
	if !ok || !h.breakerOpen {
		return false
	}

	if t.now().Sub(h.breakerLastFailure) > BreakerCooldown {
		h.breakerOpen = false
		h.breakerFailures = 0
		return false
	}
	return true
}

// Status returns the backend's current status string.
func (t *HealthTracker) Status(backend string) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	h, ok := t.backends[backend]
	if !ok {
		return StatusUnavailable
	}
	return h.status
}

// AvgResponseMs returns the rolling average response time. Backends
// with no samples are penalized with +Inf so they sort last.
func (t *HealthTracker) AvgResponseMs(backend string) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	h, ok := t.backends[backend]
	if !ok || len(h.responseTimes) == 0 {
		return math.Inf(1)
	}
	return avg(h.responseTimes)
}

// Snapshot copies the current state of every backend.
func (t *HealthTracker) Snapshot() map[string]BackendStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]BackendStats, len(t.backends))
	for name, h := range t.backends {
		stats := BackendStats{
			Status:                 h.status,
			LastCheck:              h.lastCheck,
			SuccessCount:           h.successCount,
			ErrorCount:             h.errorCount,
			LastError:              h.lastError,
			AvailabilityPercentage: availabilityPct(h),
			SampleCount:            len(h.responseTimes),
			CircuitBreaker: BreakerState{
				FailureCount: h.breakerFailures,
				IsOpen:       h.breakerOpen,
			},
		}
		if !h.breakerLastFailure.IsZero() {
			lastFailure := h.breakerLastFailure
			stats.CircuitBreaker.LastFailure = &lastFailure
		}
		if len(h.responseTimes) > 0 {
			stats.AvgResponseTimeMs = avg(h.responseTimes)
			stats.MinResponseTimeMs = minOf(h.responseTimes)
			stats.MaxResponseTimeMs = maxOf(h.responseTimes)
		}
		out[name] = stats
	}
	return out
}

func availabilityPct(h *backendHealth) float64 {
	total := h.successCount + h.errorCount
	if total == 0 {
		return 100
	}
	return float64(h.successCount) / float64(total) * 100
}

func avg(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s
	}
	return sum / float64(len(samples))
}

func minOf(samples []float64) float64 {
	m := samples[0]
	for _, s := range samples[1:] {
		if s < m {
			m = s
		}
	}
	return m
}

func maxOf(samples []float64) float64 {
	m := samples[0]
	for _, s := range samples[1:] {
		if s > m {
			m = s
		}
	}
	return m
}
