package mapfs

// Logger provides a pluggable logging interface for mapfs operations.
// Implementations must be safe for concurrent use by multiple goroutines.
//
// The filesystem reports every recoverable failure through its Logger in
// addition to the operation's return value. The logging channel is
// best-effort observability and carries no behavioral contract.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Error logs error messages.
	Error(format string, args ...interface{})
}
