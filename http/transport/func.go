package transport

import "net/http"

// RoundTripperFunc adapts a plain function to http.RoundTripper, in the
// manner of http.HandlerFunc. Handy for stubbing transports in tests or
// for one-off transport logic that does not warrant a type.
//
// Example:
//
//	rt := transport.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
//	    return &http.Response{
//	        StatusCode: http.StatusOK,
//	        Body:       io.NopCloser(strings.NewReader(`{"status":"ok"}`)),
//	    }, nil
//	})
//	client := &http.Client{Transport: rt}
type RoundTripperFunc func(req *http.Request) (*http.Response, error)

// RoundTrip implements http.RoundTripper by calling the function.
func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

var _ http.RoundTripper = (RoundTripperFunc)(nil)
