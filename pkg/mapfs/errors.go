package mapfs

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := st.Flush()
//	if errors.Is(err, mapfs.ErrFlushFailed) {
//	    // Handle durability failure
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrStoreCorrupt indicates an entry in the backing store could not be
	// decoded (unknown type tag or missing delimiter).
	ErrStoreCorrupt = errors.New("store entry corrupt")

	// ErrNotBinary indicates a binary read was attempted on a payload that
	// does not carry the binary marker.
	ErrNotBinary = errors.New("file is not binary")

	// ErrNotImplemented indicates an operation the filesystem deliberately
	// does not support.
	ErrNotImplemented = errors.New("not implemented")

	// ErrConnectionFailed indicates a backing store connection failed.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrFlushFailed indicates the backing store could not commit pending
	// changes to durable storage.
	ErrFlushFailed = errors.New("flush failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrFlushFailed):
		return ExitFlushError
	case errors.Is(err, ErrStoreCorrupt):
		return ExitStoreCorrupt
	}

	// Check for common connection error patterns from store drivers
	errStr := err.Error()
	if strings.Contains(errStr, "failed to connect") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		return ExitConnectionError
	}

	return ExitGeneralError
}
