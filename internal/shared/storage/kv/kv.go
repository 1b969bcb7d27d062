// Package kv provides the synchronous string key-value store the history
// and progress components persist into. Single-key writes are assumed
// atomic; there is no atomicity across keys.
package kv

import "context"

// Store is a string-keyed blob store. Get reports absence via the second
// return rather than an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}
