package retry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "operation timed out" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestIsTransientNil(t *testing.T) {
	c := NewTransportErrorClassifier()
	assert.False(t, c.IsTransient(nil))
}

func TestIsTransientContextErrorsAreFatal(t *testing.T) {
	c := NewTransportErrorClassifier()

	assert.False(t, c.IsTransient(context.Canceled))
	assert.False(t, c.IsTransient(context.DeadlineExceeded))
	assert.False(t, c.IsTransient(fmt.Errorf("flush: %w", context.Canceled)))
}

func TestIsTransientNetTimeout(t *testing.T) {
	c := NewTransportErrorClassifier()

	var err net.Error = timeoutError{}
	assert.True(t, c.IsTransient(err))
	assert.True(t, c.IsTransient(fmt.Errorf("put object: %w", err)))
}

func TestIsTransientDNSError(t *testing.T) {
	c := NewTransportErrorClassifier()

	assert.True(t, c.IsTransient(&net.DNSError{Err: "timeout", IsTimeout: true}))
	assert.True(t, c.IsTransient(&net.DNSError{Err: "temporary", IsTemporary: true}))
	assert.False(t, c.IsTransient(&net.DNSError{Err: "no such host", IsNotFound: true}))
}

func TestIsTransientSyscallErrors(t *testing.T) {
	c := NewTransportErrorClassifier()

	assert.True(t, c.IsTransient(syscall.ECONNREFUSED))
	assert.True(t, c.IsTransient(syscall.ECONNRESET))
	assert.True(t, c.IsTransient(syscall.EPIPE))
	assert.True(t, c.IsTransient(fmt.Errorf("dial: %w", syscall.ECONNREFUSED)))
}

func TestIsTransientMessageFragments(t *testing.T) {
	c := NewTransportErrorClassifier()

	assert.True(t, c.IsTransient(errors.New("api error SlowDown: reduce request rate")))
	assert.True(t, c.IsTransient(errors.New("api error ServiceUnavailable")))
	assert.True(t, c.IsTransient(errors.New("read tcp: i/o timeout")))
	assert.True(t, c.IsTransient(errors.New("pq: too many connections")))
}

func TestIsTransientOrdinaryErrorsAreFatal(t *testing.T) {
	c := NewTransportErrorClassifier()

	assert.False(t, c.IsTransient(errors.New("syntax error at or near SELECT")))
	assert.False(t, c.IsTransient(errors.New("access denied")))
}
