package transport

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates transport with defaults", func(t *testing.T) {
		t.Parallel()

		trans := New()

		require.NotNil(t, trans)
		assert.Equal(t, defaultMaxIdleConns, trans.MaxIdleConns)
		assert.Equal(t, defaultIdleConnTimeout, trans.IdleConnTimeout)
		assert.Equal(t, defaultTLSHandshakeTimeout, trans.TLSHandshakeTimeout)
		assert.Equal(t, defaultExpectContinueTimeout, trans.ExpectContinueTimeout)
		assert.False(t, trans.DisableKeepAlives)
		assert.False(t, trans.DisableCompression)
		assert.Nil(t, trans.TLSClientConfig)
	})

	t.Run("creates transport without pooling", func(t *testing.T) {
		t.Parallel()

		trans := New(WithoutPooling)

		require.NotNil(t, trans)
		assert.True(t, trans.DisableKeepAlives)
	})

	t.Run("creates transport with DNS cache", func(t *testing.T) {
		t.Parallel()

		trans := New(WithDNSCache)

		require.NotNil(t, trans)
		assert.NotNil(t, trans.DialContext)
	})

	t.Run("creates transport with insecure TLS", func(t *testing.T) {
		t.Parallel()

		trans := New(WithInsecureTLS)

		require.NotNil(t, trans)
		require.NotNil(t, trans.TLSClientConfig)
		assert.True(t, trans.TLSClientConfig.InsecureSkipVerify)
	})

	t.Run("creates transport with multiple options", func(t *testing.T) {
		t.Parallel()

		trans := New(WithoutPooling, WithDNSCache, WithInsecureTLS)

		require.NotNil(t, trans)
		assert.True(t, trans.DisableKeepAlives)
		assert.NotNil(t, trans.DialContext)
		require.NotNil(t, trans.TLSClientConfig)
		assert.True(t, trans.TLSClientConfig.InsecureSkipVerify)
	})
}

func TestNew_EnvironmentVariables(t *testing.T) {
	t.Run("respects BUDGET_HTTP_MAX_IDLE_CONNS", func(t *testing.T) {
		t.Setenv("BUDGET_HTTP_MAX_IDLE_CONNS", "50")

		trans := New()

		assert.Equal(t, 50, trans.MaxIdleConns)
	})

	t.Run("respects BUDGET_HTTP_IDLE_CONN_TIMEOUT", func(t *testing.T) {
		t.Setenv("BUDGET_HTTP_IDLE_CONN_TIMEOUT", "45s")

		trans := New()

		assert.Equal(t, 45*time.Second, trans.IdleConnTimeout)
	})

	t.Run("respects BUDGET_HTTP_FORCE_HTTP2", func(t *testing.T) {
		t.Setenv("BUDGET_HTTP_FORCE_HTTP2", "true")

		trans := New()

		assert.True(t, trans.ForceAttemptHTTP2)
	})

	t.Run("falls back on malformed values", func(t *testing.T) {
		t.Setenv("BUDGET_HTTP_MAX_IDLE_CONNS", "plenty")
		t.Setenv("BUDGET_HTTP_IDLE_CONN_TIMEOUT", "soon")

		trans := New()

		assert.Equal(t, defaultMaxIdleConns, trans.MaxIdleConns)
		assert.Equal(t, defaultIdleConnTimeout, trans.IdleConnTimeout)
	})
}

func TestGet(t *testing.T) {
	t.Parallel()

	t.Run("returns shared instance for identical options", func(t *testing.T) {
		t.Parallel()

		first := Get(t.Context(), WithDNSCache)
		second := Get(t.Context(), WithDNSCache)

		assert.Same(t, first, second)
	})

	t.Run("distinct option sets get distinct instances", func(t *testing.T) {
		t.Parallel()

		pooled := Get(t.Context())
		unpooled := Get(t.Context(), WithoutPooling)

		assert.NotSame(t, pooled, unpooled)
	})

	t.Run("context round tripper wins", func(t *testing.T) {
		t.Parallel()

		custom := RoundTripperFunc(func(*http.Request) (*http.Response, error) {
			return nil, http.ErrNotSupported
		})

		ctx := WithRoundTripper(t.Context(), custom)

		rt := Get(ctx)

		assert.IsType(t, RoundTripperFunc(nil), rt)
	})

	t.Run("override option wins over shared instances", func(t *testing.T) {
		t.Parallel()

		custom := RoundTripperFunc(func(*http.Request) (*http.Response, error) {
			return nil, http.ErrNotSupported
		})

		rt := Get(t.Context(), WithOverride(custom))

		assert.IsType(t, RoundTripperFunc(nil), rt)
	})
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	client := NewClient(t.Context())

	require.NotNil(t, client)
	assert.NotNil(t, client.Transport)
	assert.Zero(t, client.Timeout, "per-call deadlines come from the budget layer, not the client")
}
