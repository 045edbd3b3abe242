package retry

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"
)

// TransportErrorClassifier implements mapfs.ErrorClassifier for the network
// failures store backends encounter while loading or flushing.
type TransportErrorClassifier struct{}

// NewTransportErrorClassifier creates a new TransportErrorClassifier.
func NewTransportErrorClassifier() *TransportErrorClassifier {
	return &TransportErrorClassifier{}
}

// transientFragments are error-string markers from drivers and SDKs that do
// not expose typed errors for these conditions.
var transientFragments = []string{
	"connection refused",
	"connection reset",
	"broken pipe",
	"i/o timeout",
	"unexpected EOF",
	"TLS handshake timeout",
	"too many connections",
	// S3 throttling and server-side failures
	"SlowDown",
	"RequestTimeout",
	"InternalError",
	"ServiceUnavailable",
}

// IsTransient determines if an error is temporary and retryable.
// Context cancellation and deadline expiry are fatal: the caller gave up.
func (c *TransportErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.IsTemporary || dnsErr.IsTimeout
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) {
		return true
	}

	msg := err.Error()
	for _, fragment := range transientFragments {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}
