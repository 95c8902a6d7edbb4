package budget

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies this instrumentation library in exported spans.
const tracerName = "github.com/amp-labs/amp-budget/http/budget"

// newTracer returns the configured tracer, falling back to the global
// provider when WithTracerProvider was not used.
func newTracer(configured trace.Tracer) trace.Tracer { //nolint:ireturn
	if configured != nil {
		return configured
	}

	return otel.GetTracerProvider().Tracer(tracerName)
}

// startSpan opens the client span for one budgeted call. The effective
// timeout is recorded up front since it is decided before the call starts.
func (c *Client) startSpan(
	ctx context.Context, method, target string, effective time.Duration,
) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, "http.budget.request",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", target),
			attribute.String("budget.operation_id", c.operationID),
			attribute.Float64("budget.effective_timeout_seconds", effective.Seconds()),
		))
}

// finishSpan records the response status and the budget left after the
// call.
func finishSpan(span trace.Span, rsp *http.Response, remaining time.Duration) {
	span.SetAttributes(attribute.Float64("budget.remaining_seconds", remaining.Seconds()))

	if rsp != nil {
		span.SetAttributes(attribute.Int("http.response.status_code", rsp.StatusCode))
	}
}

// recordSpanError marks the span failed with the given error.
func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
