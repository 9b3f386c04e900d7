package roster

import "errors"

var (
	// ErrNoNames indicates the extraction service returned text that
	// normalized to zero candidate names. The ledger is left unchanged.
	ErrNoNames = errors.New("no attendee names detected")
)
