// Package transport builds the HTTP transports that sit underneath a
// budgeted client.
//
// The budget layer treats its transport as an external collaborator: it
// hands over a request with a deadline and measures how long the exchange
// took. This package provides that collaborator, with connection pooling,
// optional DNS caching, optional response decompression, and request
// logging.
//
// # Basic Usage
//
//	// A pooled *http.Client suitable for budget.New
//	client := transport.NewClient(ctx)
//
//	// A tuned round tripper with DNS caching and decompression
//	rt := transport.Get(ctx, transport.WithDNSCache, transport.WithDecompression)
//
//	// Override the transport for a subtree of the code via context
//	ctx = transport.WithRoundTripper(ctx, customRT)
//
// # Environment Variables
//
// The base transport parameters can be tuned without code changes:
//
//   - BUDGET_HTTP_MAX_IDLE_CONNS: Maximum idle connections (default: 100)
//   - BUDGET_HTTP_IDLE_CONN_TIMEOUT: Idle connection timeout (default: 90s)
//   - BUDGET_HTTP_TLS_HANDSHAKE_TIMEOUT: TLS handshake timeout (default: 10s)
//   - BUDGET_HTTP_EXPECT_CONTINUE_TIMEOUT: Expect-Continue timeout (default: 1s)
//   - BUDGET_HTTP_DIAL_TIMEOUT: Connection dial timeout (default: 30s)
//   - BUDGET_HTTP_DIAL_KEEPALIVE: TCP keep-alive duration (default: 30s)
//   - BUDGET_HTTP_FORCE_HTTP2: Force HTTP/2 attempts (default: false)
//   - BUDGET_HTTP_DISABLE_HTTP2: Disable HTTP/2 entirely (default: true)
package transport

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
)

// New returns a new *http.Transport with defaults that can be overridden
// through environment variables. Prefer Get for normal use: it reuses
// shared instances so connection pools are not duplicated.
func New(opts ...Option) *http.Transport {
	return create(readOptions(opts...))
}

// create builds an *http.Transport from the given config and the
// BUDGET_HTTP_* environment variables.
func create(cfg *config) *http.Transport {
	dialTimeout := envDuration("BUDGET_HTTP_DIAL_TIMEOUT", defaultDialTimeout)
	keepAlive := envDuration("BUDGET_HTTP_DIAL_KEEPALIVE", defaultKeepAlive)

	dialer := &net.Dialer{
		Timeout:   dialTimeout,
		KeepAlive: keepAlive,
	}

	trans := &http.Transport{
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     envBool("BUDGET_HTTP_FORCE_HTTP2", defaultForceAttemptHTTP2),
		MaxIdleConns:          envInt("BUDGET_HTTP_MAX_IDLE_CONNS", defaultMaxIdleConns),
		IdleConnTimeout:       envDuration("BUDGET_HTTP_IDLE_CONN_TIMEOUT", defaultIdleConnTimeout),
		TLSHandshakeTimeout:   envDuration("BUDGET_HTTP_TLS_HANDSHAKE_TIMEOUT", defaultTLSHandshakeTimeout),
		ExpectContinueTimeout: envDuration("BUDGET_HTTP_EXPECT_CONTINUE_TIMEOUT", defaultExpectContinueTimeout),
	}

	if envBool("BUDGET_HTTP_DISABLE_HTTP2", true) {
		trans.TLSNextProto = map[string]func(string, *tls.Conn) http.RoundTripper{}
	}

	if cfg.disablePooling {
		trans.DisableKeepAlives = true
	}

	if cfg.disableCompression {
		trans.DisableCompression = true
	}

	if cfg.dnsCache {
		trans.DialContext = cachedDialContext(dialer)
	}

	if cfg.insecureTLS {
		trans.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true, //nolint:gosec
		}
	}

	return trans
}

// Get returns an http.RoundTripper for the given options. A round tripper
// set in the context takes precedence, then an explicit override option,
// then a shared base instance matching the options. Decompression and
// logging wrappers, when requested, are layered on top.
func Get(ctx context.Context, opts ...Option) http.RoundTripper { //nolint:ireturn
	cfg := readOptions(opts...)

	rt := fromContext(ctx)
	if rt == nil {
		rt = cfg.override
	}

	if rt == nil {
		rt = sharedInstance(cfg)
	}

	return wrap(rt, cfg)
}

// wrap layers the optional decorators over the base round tripper.
func wrap(rt http.RoundTripper, cfg *config) http.RoundTripper { //nolint:ireturn
	if cfg.decompress {
		rt = NewDecompressor(rt)
	}

	if cfg.logger != nil {
		rt = NewLogging(rt, cfg.logger)
	}

	return rt
}

// NewClient returns an *http.Client over Get's round tripper. The client
// carries no timeout of its own: per-call deadlines are supplied by the
// budget layer above it.
func NewClient(ctx context.Context, opts ...Option) *http.Client {
	return &http.Client{
		Transport: Get(ctx, opts...),
	}
}
