package orchestrator

import (
	"errors"
	"math"
	"testing"
	"time"

	"companion-srv/internal/model"
)

func TestHealthTrackerCircuitBreaker(t *testing.T) {
	t.Run("opens after threshold failures", func(t *testing.T) {
		tracker := NewHealthTracker()

		for i := 0; i < BreakerThreshold-1; i++ {
			tracker.RecordFailure(model.BackendExternalLLM, errors.New("timeout"))
		}
		if tracker.BreakerOpen(model.BackendExternalLLM) {
			t.Fatalf("breaker open after %d failures, want closed", BreakerThreshold-1)
		}

		tracker.RecordFailure(model.BackendExternalLLM, errors.New("timeout"))
		if !tracker.BreakerOpen(model.BackendExternalLLM) {
			t.Fatalf("breaker closed after %d failures, want open", BreakerThreshold)
		}
	})

	t.Run("lazily resets after cooldown", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		tracker := NewHealthTrackerWithClock(func() time.Time { return now })

		for i := 0; i < BreakerThreshold; i++ {
			tracker.RecordFailure(model.BackendExternalLLM, errors.New("timeout"))
		}
		if !tracker.BreakerOpen(model.BackendExternalLLM) {
			t.Fatal("breaker should be open")
		}

		now = now.Add(BreakerCooldown - time.Second)
		if !tracker.BreakerOpen(model.BackendExternalLLM) {
			t.Fatal("breaker reset before cooldown elapsed")
		}

		now = now.Add(2 * time.Second)
		if tracker.BreakerOpen(model.BackendExternalLLM) {
			t.Fatal("breaker still open after cooldown")
		}

		stats := tracker.Snapshot()[model.BackendExternalLLM]
		if stats.CircuitBreaker.FailureCount != 0 {
			t.Errorf("failure count after reset: got %d, want 0", stats.CircuitBreaker.FailureCount)
		}
	})

	t.Run("closed for unknown backend", func(t *testing.T) {
		tracker := NewHealthTracker()
		if tracker.BreakerOpen("nope") {
			t.Error("breaker open for unknown backend")
		}
	})
}

func TestHealthTrackerStatus(t *testing.T) {
	t.Run("fast successes stay healthy", func(t *testing.T) {
		tracker := NewHealthTracker()
		tracker.RecordSuccess(model.BackendHybrid, 200*time.Millisecond)

		if got := tracker.Status(model.BackendHybrid); got != StatusHealthy {
			t.Errorf("status: got %s, want %s", got, StatusHealthy)
		}
	})

	t.Run("slow average degrades", func(t *testing.T) {
		tracker := NewHealthTracker()
		tracker.RecordSuccess(model.BackendExternalLLM, 2500*time.Millisecond)

		if got := tracker.Status(model.BackendExternalLLM); got != StatusDegraded {
			t.Errorf("status: got %s, want %s", got, StatusDegraded)
		}
	})

	t.Run("availability thresholds after failures", func(t *testing.T) {
		tracker := NewHealthTracker()

		// 0% availability
		tracker.RecordFailure(model.BackendExternalLLM, errors.New("boom"))
		if got := tracker.Status(model.BackendExternalLLM); got != StatusUnavailable {
			t.Errorf("status at 0%% availability: got %s, want %s", got, StatusUnavailable)
		}

		// 9 successes, 1 failure: 90% exactly, not degraded
		tracker = NewHealthTracker()
		for i := 0; i < 9; i++ {
			tracker.RecordSuccess(model.BackendExternalLLM, 100*time.Millisecond)
		}
		tracker.RecordFailure(model.BackendExternalLLM, errors.New("boom"))
		if got := tracker.Status(model.BackendExternalLLM); got != StatusHealthy {
			t.Errorf("status at 90%% availability: got %s, want %s", got, StatusHealthy)
		}

		// 1 success, 1 failure: 50% exactly, degraded
		tracker = NewHealthTracker()
		tracker.RecordSuccess(model.BackendExternalLLM, 100*time.Millisecond)
		tracker.RecordFailure(model.BackendExternalLLM, errors.New("boom"))
		if got := tracker.Status(model.BackendExternalLLM); got != StatusDegraded {
			t.Errorf("status at 50%% availability: got %s, want %s", got, StatusDegraded)
		}
	})
}

func TestHealthTrackerResponseTimes(t *testing.T) {
	t.Run("no samples penalized with infinity", func(t *testing.T) {
		tracker := NewHealthTracker()
		if got := tracker.AvgResponseMs(model.BackendHybrid); !math.IsInf(got, 1) {
			t.Errorf("avg with no samples: got %v, want +Inf", got)
		}
	})

	t.Run("rolling average", func(t *testing.T) {
		tracker := NewHealthTracker()
		tracker.RecordSuccess(model.BackendRuleBased, 100*time.Millisecond)
		tracker.RecordSuccess(model.BackendRuleBased, 300*time.Millisecond)

		if got := tracker.AvgResponseMs(model.BackendRuleBased); got != 200 {
			t.Errorf("avg: got %v, want 200", got)
		}
	})

	t.Run("history is bounded", func(t *testing.T) {
		tracker := NewHealthTracker()
		for i := 0; i < MaxHistorySamples+20; i++ {
			tracker.RecordSuccess(model.BackendRuleBased, 10*time.Millisecond)
		}

		stats := tracker.Snapshot()[model.BackendRuleBased]
		if stats.SampleCount != MaxHistorySamples {
			t.Errorf("sample count: got %d, want %d", stats.SampleCount, MaxHistorySamples)
		}
		if stats.SuccessCount != MaxHistorySamples+20 {
			t.Errorf("success count: got %d, want %d", stats.SuccessCount, MaxHistorySamples+20)
		}
	})
}

func TestHealthTrackerSnapshot(t *testing.T) {
	tracker := NewHealthTracker()
	tracker.RecordSuccess(model.BackendRuleBased, 50*time.Millisecond)
	tracker.RecordSuccess(model.BackendRuleBased, 150*time.Millisecond)
	tracker.RecordFailure(model.BackendExternalLLM, errors.New("quota exceeded"))

	snapshot := tracker.Snapshot()
	if len(snapshot) != len(model.Backends) {
		t.Fatalf("snapshot size: got %d, want %d", len(snapshot), len(model.Backends))
	}

	rb := snapshot[model.BackendRuleBased]
	if rb.MinResponseTimeMs != 50 || rb.MaxResponseTimeMs != 150 {
		t.Errorf("min/max: got %v/%v, want 50/150", rb.MinResponseTimeMs, rb.MaxResponseTimeMs)
	}

	ext := snapshot[model.BackendExternalLLM]
	if ext.LastError != "quota exceeded" {
		t.Errorf("last error: got %q, want %q", ext.LastError, "quota exceeded")
	}
	if ext.CircuitBreaker.LastFailure == nil {
		t.Error("last failure timestamp missing")
	}
}
