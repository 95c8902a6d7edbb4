package budget

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for the request counter.
const (
	outcomeOK       = "ok"
	outcomeError    = "transport_error"
	outcomeExceeded = "budget_exceeded"
)

var (
	// requestCount counts budgeted calls by method and outcome.
	requestCount = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "http_budget_requests",
		Help: "The total number of HTTP calls issued against a shared budget",
	}, []string{"method", "outcome"})

	// clampedCalls counts calls whose requested per-call timeout was
	// reduced to the remaining budget.
	clampedCalls = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "http_budget_clamped_requests",
		Help: "The total number of calls whose timeout was clamped to the remaining budget",
	})

	// overageCalls counts calls whose measured duration exceeded the total
	// budget despite the clamping.
	overageCalls = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "http_budget_exceeded",
		Help: "The total number of calls that ran past the total budget",
	})

	// consumedSeconds measures the wall-clock duration charged to budgets
	// per call.
	consumedSeconds = promauto.NewHistogram(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "http_budget_consumed_seconds",
		Help: "The wall-clock time charged to shared budgets per call",
		Buckets: []float64{
			0.01, // 10ms
			0.1,  // 100ms
			1,    // 1s
			10,   // 10s
			60,   // 1m
			120,  // 2m
			300,  // 5m
			600,  // 10m
		},
	})
)
