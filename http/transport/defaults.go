package transport

import "time"

const (
	defaultMaxIdleConns          = 100
	defaultIdleConnTimeout       = 90 * time.Second
	defaultTLSHandshakeTimeout   = 10 * time.Second
	defaultExpectContinueTimeout = 1 * time.Second
	defaultForceAttemptHTTP2     = false
	defaultDialTimeout           = 30 * time.Second //nolint:gomnd,mnd
	defaultKeepAlive             = 30 * time.Second //nolint:gomnd,mnd
)
