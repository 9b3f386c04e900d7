package extract

import "errors"

var (
	// ErrService wraps network, auth, quota and malformed-response failures
	// from an extraction engine. Callers surface it as a single message and
	// leave the ledger untouched; no automatic retry.
	ErrService = errors.New("extraction service error")

	// ErrTimeout indicates the engine did not respond within the configured
	// deadline.
	ErrTimeout = errors.New("extraction timed out")
)
