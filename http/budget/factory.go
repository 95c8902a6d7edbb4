package budget

import "time"

// Factory mints a fresh Client per logical operation from a shared
// transport and a fixed total budget. Budgets are never replenished, so a
// caller that retries an operation should take a new Client from the
// Factory for every attempt rather than reuse the drained one.
//
// The zero value is not usable; populate Transport and Total first.
type Factory struct {
	// Transport is handed to every minted Client. It is typically a
	// pooled *http.Client shared by the whole process.
	Transport Doer
	// Total is the budget given to each minted Client.
	Total time.Duration
	// Options are applied to every minted Client.
	Options []Option
}

// NewClient creates a Client for one logical operation. It panics under
// the same preconditions as New.
func (f *Factory) NewClient(opts ...Option) *Client {
	combined := make([]Option, 0, len(f.Options)+len(opts))
	combined = append(combined, f.Options...)
	combined = append(combined, opts...)

	return New(f.Transport, f.Total, combined...)
}
