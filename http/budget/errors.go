package budget

import (
	"errors"
	"fmt"
	"time"
)

// ErrBudgetExceeded is the sentinel matched by errors.Is when a call's
// measured duration exceeded the total budget. The concrete error returned
// is always an *ExceededError carrying the measured values.
var ErrBudgetExceeded = errors.New("http time budget exceeded")

// ExceededError reports a single call whose wall-clock duration exceeded
// the operation's total budget. Since every call is clamped to the
// remaining budget before it is issued, this normally indicates a transport
// that ignored the supplied deadline rather than ordinary slowness.
type ExceededError struct {
	// Elapsed is the measured wall-clock duration of the offending call.
	Elapsed time.Duration
	// Total is the operation's total budget.
	Total time.Duration
}

// Error implements the error interface.
func (e *ExceededError) Error() string {
	return fmt.Sprintf("%s: call took %s of a %s budget", ErrBudgetExceeded, e.Elapsed, e.Total)
}

// Timeout marks the error as timeout-class, so os.IsTimeout and callers
// checking for net.Error-style timeouts treat it like any other deadline
// failure.
func (e *ExceededError) Timeout() bool {
	return true
}

// Unwrap lets errors.Is(err, ErrBudgetExceeded) match.
func (e *ExceededError) Unwrap() error {
	return ErrBudgetExceeded
}
