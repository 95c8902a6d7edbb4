package transport

import (
	"net/http"
	"sync"
)

// Shared base instances, one per combination of the config flags that
// affect *http.Transport construction. Reusing them keeps connection pools
// warm instead of minting a fresh transport per caller.

const (
	flagUnpooled = 1 << iota
	flagDNSCache
	flagInsecure
	flagNoCompression
)

//nolint:gochecknoglobals
var (
	instanceMu sync.Mutex
	instances  [flagNoCompression << 1]*http.Transport
)

// sharedInstance returns the lazily created shared transport matching the
// config's base flags. Wrapper options (decompression, logging) do not
// participate in the key; they are layered per call.
func sharedInstance(cfg *config) *http.Transport {
	key := 0

	if cfg.disablePooling {
		key |= flagUnpooled
	}

	if cfg.dnsCache {
		key |= flagDNSCache
	}

	if cfg.insecureTLS {
		key |= flagInsecure
	}

	if cfg.disableCompression {
		key |= flagNoCompression
	}

	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instances[key] == nil {
		instances[key] = create(cfg)
	}

	return instances[key]
}
