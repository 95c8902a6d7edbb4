package transport

import (
	"context"
	"net/http"
)

// contextKey is a type for context keys defined in this package.
// It is unexported to prevent collisions with context keys defined in
// other packages.
type contextKey string

const contextKeyRoundTripper contextKey = "budget-http-transport"

// WithRoundTripper binds a round tripper to the context. Get consults it
// before falling back to the shared instances, which lets tests and
// nested code substitute a transport without plumbing it through every
// call.
func WithRoundTripper(ctx context.Context, rt http.RoundTripper) context.Context {
	return context.WithValue(ctx, contextKeyRoundTripper, rt)
}

// fromContext extracts a round tripper bound with WithRoundTripper, or
// nil.
func fromContext(ctx context.Context) http.RoundTripper { //nolint:ireturn
	if ctx == nil {
		return nil
	}

	val := ctx.Value(contextKeyRoundTripper)
	if val == nil {
		return nil
	}

	rt, ok := val.(http.RoundTripper)
	if !ok {
		return nil
	}

	return rt
}
