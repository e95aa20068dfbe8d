package azstore

import (
	"net/http"
	"time"
)

// Pool and timeout defaults for the tuned transports.
const (
	defaultResponseHeaderTimeout = 60 * time.Second
	defaultTLSHandshakeTimeout   = 10 * time.Second
	defaultIdleConnTimeout       = 90 * time.Second
	defaultExpectContinueTimeout = 1 * time.Second
	defaultMaxIdleConns          = 256
	defaultMaxIdleConnsPerHost   = 64
)

// DefaultTransport returns the pool-tuned *http.Client used for read and
// delete operations. The wait for response headers is bounded so a stalled
// server cannot hold a caller indefinitely.
func DefaultTransport() *http.Client {
	return &http.Client{Transport: tunedTransport(defaultResponseHeaderTimeout)}
}

// UploadTransport returns the *http.Client used for uploads. The service does
// not respond until the entire body has been received, so the response-header
// wait is unbounded; connect, TLS, and idle timeouts are kept from the
// defaults.
func UploadTransport() *http.Client {
	return &http.Client{Transport: tunedTransport(0)}
}

func tunedTransport(responseHeaderTimeout time.Duration) http.RoundTripper {
	base, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return http.DefaultTransport
	}
	clone := base.Clone()
	clone.MaxIdleConns = defaultMaxIdleConns
	clone.MaxIdleConnsPerHost = defaultMaxIdleConnsPerHost
	clone.IdleConnTimeout = defaultIdleConnTimeout
	clone.TLSHandshakeTimeout = defaultTLSHandshakeTimeout
	clone.ExpectContinueTimeout = defaultExpectContinueTimeout
	clone.ResponseHeaderTimeout = responseHeaderTimeout
	return clone
}
