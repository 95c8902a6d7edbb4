// Package budget provides an HTTP client wrapper that shares one time budget
// across every request made within a single logical operation.
//
// A Client is created with a total timeout. Each request it issues consumes
// from the same remaining budget: the timeout handed to the underlying
// transport is clamped to whatever is left, and the measured wall-clock
// duration of the call is subtracted afterwards. Once the budget runs out,
// the next call is clamped to a zero timeout and fails almost immediately
// with a timeout-class error. This bounds the worst-case latency of the
// whole operation rather than of each individual request.
//
// # Basic Usage
//
//	client := budget.New(http.DefaultClient, 5*time.Second)
//
//	rsp, err := client.Get(ctx, "https://api.example.com/users")
//	if err != nil {
//	    return err
//	}
//	defer rsp.Body.Close()
//
//	// This call can only use whatever the first one left over.
//	rsp2, err := client.Get(ctx, "https://api.example.com/orders")
//
// # Scoping
//
// A Client is scoped to exactly one logical operation. Create a fresh Client
// (or use a Factory) per operation; never reuse one across unrelated work,
// since the remaining budget is never replenished. Goroutines belonging to
// the same operation may share a single Client: the budget bookkeeping is
// serialized internally, while the transport calls themselves run in
// parallel.
//
// # Errors
//
// Transport failures, including transport-enforced timeouts when a clamped
// deadline is hit, propagate to the caller unchanged. The only error this
// package adds is ExceededError, returned when a single call's measured
// duration exceeds the total budget despite the clamping (a transport that
// ignored its deadline, or clock trouble).
package budget

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
)

// Doer performs a single HTTP exchange. It is the transport collaborator
// consumed by Client; *http.Client satisfies it directly. The effective
// timeout for each call is delivered as a deadline on the request context,
// so any Doer that honors context cancellation works here.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues HTTP requests against a shared time budget.
//
// The total budget is fixed at construction. The remaining budget only ever
// decreases; it is decremented by each call's measured wall-clock duration,
// whether the call succeeded or failed. The bookkeeping (read, clamp,
// decrement) is guarded by a mutex that is never held across the transport
// call, so concurrent requests within one operation serialize only their
// accounting, not their I/O.
type Client struct {
	transport Doer
	total     time.Duration

	mu        sync.Mutex
	remaining time.Duration

	exhausted atomic.Bool

	operationID string
	now         func() time.Time
	logger      *slog.Logger
	tracer      trace.Tracer
}

// New creates a Client that shares the given total budget across all
// requests it will ever issue. The transport is borrowed, not owned: it may
// be shared by any number of Clients (one per logical operation) to reuse
// connection pools underneath.
//
// A nil transport or a non-positive total is a programmer error and panics.
func New(transport Doer, total time.Duration, opts ...Option) *Client {
	if transport == nil {
		panic("budget: transport is nil")
	}

	if total <= 0 {
		panic(fmt.Sprintf("budget: total timeout must be positive, got %s", total))
	}

	client := &Client{
		transport:   transport,
		total:       total,
		remaining:   total,
		operationID: uuid.NewString(),
		now:         time.Now,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	client.tracer = newTracer(client.tracer)

	return client
}

// Total returns the immutable total budget this Client was created with.
func (c *Client) Total() time.Duration {
	return c.total
}

// Remaining returns the budget left for subsequent calls. It is zero or
// positive, never negative.
func (c *Client) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.remaining
}

// Exhausted reports whether the budget has reached zero. Unlike Remaining
// it does not take the bookkeeping lock, so it is cheap to poll from
// monitoring code while requests are in flight.
func (c *Client) Exhausted() bool {
	return c.exhausted.Load()
}

// OperationID returns the correlation id assigned to this Client at
// construction. It appears on every log line and span the Client emits.
func (c *Client) OperationID() string {
	return c.operationID
}

// reserve computes the effective timeout for one call: the caller's
// per-call timeout if one was given (else the full remaining budget),
// clamped so it never exceeds what is left. It does not mutate the budget.
func (c *Client) reserve(override time.Duration, hasOverride bool) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	requested := c.remaining
	if hasOverride {
		requested = override
	}

	if requested > c.remaining {
		requested = c.remaining
	}

	return requested
}

// commit charges one call's measured duration to the budget. If the call
// took longer than the total budget the charge is refused and an
// ExceededError is returned; the remaining budget is left untouched on that
// path. Otherwise the duration is subtracted, clamped at zero.
//
// The overage check deliberately compares against the total budget, not the
// remaining one. A call clamped to effective <= remaining <= total should
// never trip it; it exists to catch transports that do not honor the
// supplied deadline.
func (c *Client) commit(elapsed time.Duration) error {
	if elapsed > c.total {
		return &ExceededError{Elapsed: elapsed, Total: c.total}
	}

	c.mu.Lock()

	c.remaining -= elapsed
	if c.remaining < 0 {
		c.remaining = 0
	}

	drained := c.remaining == 0

	c.mu.Unlock()

	if drained {
		c.exhausted.Store(true)
	}

	return nil
}
