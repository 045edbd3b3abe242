// Package retry provides retry orchestration for store backends that talk
// to remote systems.
//
// Components:
//   - ExponentialBackoff: mapfs.BackoffStrategy with exponential delays and jitter
//   - TransportErrorClassifier: mapfs.ErrorClassifier for network-level failures
//   - Executor: runs an operation with classification-driven retries and
//     context cancellation
//
// Only transient transport conditions (refused or reset connections,
// timeouts, temporary DNS failures) are retried; everything else fails fast.
package retry
