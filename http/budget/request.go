package budget

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

// RequestOption configures a single call made through a Client.
type RequestOption func(*requestOptions)

// requestOptions collects the per-call settings. Everything except the
// timeout is pass-through: it is applied to the outgoing *http.Request
// unmodified and never interpreted by the budget layer.
type requestOptions struct {
	timeout    time.Duration
	hasTimeout bool

	header    http.Header
	query     url.Values
	body      io.Reader
	basicUser string
	basicPass string
	hasBasic  bool
}

// WithTimeout sets a per-call timeout. The value is an upper bound only:
// the call never receives more time than the budget has left, even if the
// caller asks for more.
func WithTimeout(timeout time.Duration) RequestOption {
	return func(o *requestOptions) {
		o.timeout = timeout
		o.hasTimeout = true
	}
}

// WithHeader adds a header to the outgoing request.
func WithHeader(key string, values ...string) RequestOption {
	return func(o *requestOptions) {
		if o.header == nil {
			o.header = http.Header{}
		}

		for _, value := range values {
			o.header.Add(key, value)
		}
	}
}

// WithQuery adds a query parameter to the outgoing request URL.
func WithQuery(key string, values ...string) RequestOption {
	return func(o *requestOptions) {
		if o.query == nil {
			o.query = url.Values{}
		}

		for _, value := range values {
			o.query.Add(key, value)
		}
	}
}

// WithBody sets the request body.
func WithBody(body io.Reader) RequestOption {
	return func(o *requestOptions) {
		o.body = body
	}
}

// WithBasicAuth sets HTTP basic auth credentials on the outgoing request.
func WithBasicAuth(username, password string) RequestOption {
	return func(o *requestOptions) {
		o.basicUser = username
		o.basicPass = password
		o.hasBasic = true
	}
}

// Request performs one HTTP call against the shared budget.
//
// The effective timeout is min(per-call timeout, remaining budget), or the
// full remaining budget when no per-call timeout is given. It is delivered
// to the transport as a context deadline. After the transport returns (or
// fails), the call's measured wall-clock duration is charged to the budget.
//
// Transport errors, including deadline errors when the clamped timeout was
// hit, are returned unchanged. If the call's duration exceeded the total
// budget, an *ExceededError is returned instead of the transport's outcome.
func (c *Client) Request(ctx context.Context, method, target string, opts ...RequestOption) (*http.Response, error) {
	ropts := &requestOptions{}

	for _, opt := range opts {
		if opt != nil {
			opt(ropts)
		}
	}

	effective := c.reserve(ropts.timeout, ropts.hasTimeout)
	clamped := ropts.hasTimeout && effective < ropts.timeout

	if clamped {
		clampedCalls.Inc()
	}

	ctx, span := c.startSpan(ctx, method, target, effective)
	defer span.End()

	callCtx, cancel := context.WithTimeout(ctx, effective)
	defer cancel()

	req, err := newRequest(callCtx, method, target, ropts)
	if err != nil {
		recordSpanError(span, err)

		return nil, err
	}

	start := c.now()
	rsp, rspErr := c.transport.Do(req)
	elapsed := c.now().Sub(start)

	consumedSeconds.Observe(elapsed.Seconds())

	if err := c.commit(elapsed); err != nil {
		// The transport outcome is discarded on the overage path, so the
		// connection has to be released here.
		if rsp != nil {
			_ = rsp.Body.Close()
		}

		requestCount.WithLabelValues(method, outcomeExceeded).Inc()
		overageCalls.Inc()
		recordSpanError(span, err)

		c.logger.Warn("HTTP call exceeded the total budget",
			"operation_id", c.operationID,
			"method", method,
			"url", target,
			"elapsed", elapsed,
			"total", c.total,
			"transport_error", rspErr)

		return nil, err
	}

	remaining := c.Remaining()
	finishSpan(span, rsp, remaining)

	c.logger.Debug("Budgeted HTTP call finished",
		"operation_id", c.operationID,
		"method", method,
		"url", target,
		"effective_timeout", effective,
		"clamped", clamped,
		"elapsed", elapsed,
		"remaining", remaining)

	if rspErr != nil {
		requestCount.WithLabelValues(method, outcomeError).Inc()
		recordSpanError(span, rspErr)

		return nil, rspErr
	}

	requestCount.WithLabelValues(method, outcomeOK).Inc()

	return rsp, nil
}

// Get performs a GET request against the shared budget.
func (c *Client) Get(ctx context.Context, target string, opts ...RequestOption) (*http.Response, error) {
	return c.Request(ctx, http.MethodGet, target, opts...)
}

// Post performs a POST request against the shared budget.
func (c *Client) Post(ctx context.Context, target string, opts ...RequestOption) (*http.Response, error) {
	return c.Request(ctx, http.MethodPost, target, opts...)
}

// Put performs a PUT request against the shared budget.
func (c *Client) Put(ctx context.Context, target string, opts ...RequestOption) (*http.Response, error) {
	return c.Request(ctx, http.MethodPut, target, opts...)
}

// Patch performs a PATCH request against the shared budget.
func (c *Client) Patch(ctx context.Context, target string, opts ...RequestOption) (*http.Response, error) {
	return c.Request(ctx, http.MethodPatch, target, opts...)
}

// Delete performs a DELETE request against the shared budget.
func (c *Client) Delete(ctx context.Context, target string, opts ...RequestOption) (*http.Response, error) {
	return c.Request(ctx, http.MethodDelete, target, opts...)
}

// newRequest builds the outgoing *http.Request and applies the
// pass-through options.
func newRequest(ctx context.Context, method, target string, ropts *requestOptions) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, ropts.body)
	if err != nil {
		return nil, err
	}

	for key, values := range ropts.header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	if len(ropts.query) > 0 {
		query := req.URL.Query()

		for key, values := range ropts.query {
			for _, value := range values {
				query.Add(key, value)
			}
		}

		req.URL.RawQuery = query.Encode()
	}

	if ropts.hasBasic {
		req.SetBasicAuth(ropts.basicUser, ropts.basicPass)
	}

	return req, nil
}
