package history

import "errors"

var (
	// ErrNotFound indicates no stored analysis matched the requested id.
	ErrNotFound = errors.New("history: entry not found")
	// ErrWriteFailed indicates the backing store rejected a write.
	ErrWriteFailed = errors.New("history: write failed")
)
