package budget

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Option configures a Client at construction time.
type Option func(*Client)

// WithLogger sets the logger used for per-call debug lines and budget
// warnings. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock replaces the wall clock used to measure call durations.
// Intended for tests; production code should not need it.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider used for the
// per-request spans. The default is the global provider, which produces
// no-op spans unless the application installed an SDK.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(c *Client) {
		if provider != nil {
			c.tracer = provider.Tracer(tracerName)
		}
	}
}

// WithOperationID overrides the autogenerated correlation id for this
// Client. Useful when the surrounding operation already has an id that
// logs and spans should carry.
func WithOperationID(id string) Option {
	return func(c *Client) {
		if id != "" {
			c.operationID = id
		}
	}
}
