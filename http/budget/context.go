package budget

import "context"

// contextKey is a type for context keys defined in this package.
// It is unexported to prevent collisions with context keys defined in
// other packages.
type contextKey string

const contextKeyClient contextKey = "http-budget-client"

// WithClient binds a Client to the context. This is the injection point
// for code that issues requests deep inside a logical operation: the
// operation's entry point creates the Client, binds it, and downstream
// code retrieves it with FromContext instead of receiving it as a
// parameter.
func WithClient(ctx context.Context, client *Client) context.Context {
	return context.WithValue(ctx, contextKeyClient, client)
}

// FromContext extracts the Client bound to the context, or nil when none
// is bound.
func FromContext(ctx context.Context) *Client {
	if ctx == nil {
		return nil
	}

	val := ctx.Value(contextKeyClient)
	if val == nil {
		return nil
	}

	client, ok := val.(*Client)
	if !ok {
		return nil
	}

	return client
}
