package transport

import (
	"context"
	"net"
	"sync"

	"github.com/rs/dnscache"
)

// resolver returns the process-wide caching DNS resolver, created on first
// use and shared by every transport that enables DNS caching.
var resolver = sync.OnceValue(func() *dnscache.Resolver { //nolint:gochecknoglobals
	return &dnscache.Resolver{}
})

// cachedDialContext returns a DialContext that resolves hosts through the
// caching resolver and dials the returned addresses in order until one
// succeeds. Under load the system resolver can time out; caching keeps
// bursts of requests from turning into bursts of DNS traffic.
func cachedDialContext(dialer *net.Dialer) func(context.Context, string, string) (net.Conn, error) {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return nil, err
		}

		ips, err := resolver().LookupHost(ctx, host)
		if err != nil {
			return nil, err
		}

		var (
			conn    net.Conn
			dialErr error
		)

		for _, ip := range ips {
			conn, dialErr = dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
			if dialErr == nil {
				return conn, nil
			}
		}

		return nil, dialErr
	}
}
