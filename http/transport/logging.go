package transport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// NewLogging wraps a round tripper so that every request, response, and
// transport failure is logged through the given logger. All log lines
// belonging to one exchange share a correlation id, making it easy to
// trace a request through interleaved output.
//
// Bodies are never logged; this layer records method, URL, status, and
// timing only.
func NewLogging(roundTripper http.RoundTripper, logger *slog.Logger) http.RoundTripper { //nolint:ireturn
	if roundTripper == nil {
		roundTripper = http.DefaultTransport
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &loggingTripper{
		next:   roundTripper,
		logger: logger,
	}
}

type loggingTripper struct {
	next   http.RoundTripper
	logger *slog.Logger
}

var _ http.RoundTripper = (*loggingTripper)(nil)

func (l *loggingTripper) RoundTrip(request *http.Request) (*http.Response, error) {
	correlationID := uuid.NewString()

	l.logger.Debug("Sending HTTP request",
		"correlation_id", correlationID,
		"method", request.Method,
		"url", request.URL.String())

	start := time.Now()
	rsp, err := l.next.RoundTrip(request)
	elapsed := time.Since(start)

	if err != nil {
		l.logger.Warn("HTTP request failed",
			"correlation_id", correlationID,
			"method", request.Method,
			"url", request.URL.String(),
			"elapsed", elapsed,
			"error", err)

		return nil, err
	}

	l.logger.Debug("Received HTTP response",
		"correlation_id", correlationID,
		"status", rsp.StatusCode,
		"elapsed", elapsed)

	return rsp, nil
}
