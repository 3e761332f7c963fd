package orchestrator

import (
	"time"

	"companion-srv/internal/emotion"
	"companion-srv/internal/response"
	"companion-srv/internal/safety"
)

// Backend status values
const (
	StatusHealthy     = "healthy"
	StatusDegraded    = "degraded"
	StatusUnavailable = "unavailable"
	StatusError       = "error"
)

// Health and circuit-breaker tuning.
const (
	// BreakerThreshold is the consecutive-failure count that opens a
	// backend's circuit.
	BreakerThreshold = 5
	// BreakerCooldown is how long an open circuit stays open past the
	// last failure before it lazily resets.
	BreakerCooldown = 5 * time.Minute
	// MaxHistorySamples bounds the rolling response-time history.
	MaxHistorySamples = 100
	// HealthyAvgMs is the rolling-average latency below which a
	// backend counts as healthy rather than degraded.
	HealthyAvgMs = 1000
	// DegradedAvailability and UnavailableAvailability are the
	// availability-percentage cutoffs applied after failures.
	DegradedAvailability    = 90
	UnavailableAvailability = 50
)

// ProcessInput is the input for ProcessMessage.
type ProcessInput struct {
	Text             string
	PreferredBackend string
}

// ProcessOutput is the combined result of one message pass.
type ProcessOutput struct {
	Emotion            emotion.Signal
	Safety             safety.Assessment
	Response           response.Result
	ServicesUsed       []string
	FallbacksTriggered []string
	TimingMs           int64
}

// BreakerState is a snapshot of one circuit breaker.
type BreakerState struct {
	FailureCount int        `json:"failure_count"`
	LastFailure  *time.Time `json:"last_failure,omitempty"`
	IsOpen       bool       `json:"is_open"`
}

// BackendStats is the per-backend slice of a Stats snapshot.
type BackendStats struct {
	Status                 string       `json:"status"`
	LastCheck              time.Time    `json:"last_check"`
	SuccessCount           int          `json:"success_count"`
	ErrorCount             int          `json:"error_count"`
	LastError              string       `json:"last_error,omitempty"`
	AvailabilityPercentage float64      `json:"availability_percentage"`
	AvgResponseTimeMs      float64      `json:"avg_response_time_ms"`
	MinResponseTimeMs      float64      `json:"min_response_time_ms"`
	MaxResponseTimeMs      float64      `json:"max_response_time_ms"`
	SampleCount            int          `json:"sample_count"`
	CircuitBreaker         BreakerState `json:"circuit_breaker"`
}

// Stats is the aggregate health snapshot for dashboards.
type Stats struct {
	Timestamp     time.Time               `json:"timestamp"`
	OverallStatus string                  `json:"overall_status"`
	Backends      map[string]BackendStats `json:"backends"`
}
