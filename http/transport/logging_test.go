package transport

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capturingLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	return logger, &buf
}

func TestLogging_SuccessfulExchange(t *testing.T) {
	t.Parallel()

	logger, buf := capturingLogger()

	stub := RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("ok")),
			Request:    req,
		}, nil
	})

	client := &http.Client{Transport: NewLogging(stub, logger)}

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, "http://internal/widgets", nil)
	require.NoError(t, err)

	rsp, err := client.Do(req)
	require.NoError(t, err)
	require.NoError(t, rsp.Body.Close())

	output := buf.String()
	assert.Contains(t, output, "Sending HTTP request")
	assert.Contains(t, output, "Received HTTP response")
	assert.Contains(t, output, "correlation_id=")
	assert.Contains(t, output, "http://internal/widgets")
}

func TestLogging_FailedExchange(t *testing.T) {
	t.Parallel()

	logger, buf := capturingLogger()

	stub := RoundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, io.ErrUnexpectedEOF
	})

	client := &http.Client{Transport: NewLogging(stub, logger)}

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, "http://internal/widgets", nil)
	require.NoError(t, err)

	_, err = client.Do(req) //nolint:bodyclose
	require.Error(t, err)

	output := buf.String()
	assert.Contains(t, output, "HTTP request failed")
	assert.Contains(t, output, "correlation_id=")
}

func TestLogging_NilArgumentsFallBack(t *testing.T) {
	t.Parallel()

	rt := NewLogging(nil, nil)

	assert.NotNil(t, rt)
	assert.Implements(t, (*http.RoundTripper)(nil), rt)
}
