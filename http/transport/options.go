package transport

import (
	"log/slog"
	"net/http"
)

// Option configures the round tripper returned by New, Get, and NewClient.
type Option func(*config)

type config struct {
	disablePooling     bool
	dnsCache           bool
	insecureTLS        bool
	disableCompression bool
	decompress         bool
	override           http.RoundTripper
	logger             *slog.Logger
}

// WithoutPooling disables HTTP keep-alive and connection reuse. Each
// request opens a fresh connection.
func WithoutPooling(c *config) {
	c.disablePooling = true
}

// WithDNSCache routes dials through a caching DNS resolver to reduce
// lookup traffic under load.
func WithDNSCache(c *config) {
	c.dnsCache = true
}

// WithInsecureTLS skips TLS certificate verification. Test environments
// only.
func WithInsecureTLS(c *config) {
	c.insecureTLS = true
}

// WithDecompression disables the built-in transparent gzip handling and
// layers a decompressor supporting gzip, deflate, brotli, zstd, snappy,
// and lz4 response encodings instead.
func WithDecompression(c *config) {
	c.disableCompression = true
	c.decompress = true
}

// WithLogging layers a round tripper that logs every request and response
// through the given logger, correlated by a per-request id.
func WithLogging(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithOverride substitutes the given round tripper for the base transport.
// Wrappers requested through other options still apply on top of it.
func WithOverride(rt http.RoundTripper) Option {
	return func(c *config) {
		c.override = rt
	}
}

// readOptions folds the options over the environment-driven defaults.
// BUDGET_HTTP_PREFER_POOLED=false makes unpooled transports the default.
func readOptions(opts ...Option) *config {
	cfg := &config{}

	if !envBool("BUDGET_HTTP_PREFER_POOLED", true) {
		cfg.disablePooling = true
	}

	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	return cfg
}
