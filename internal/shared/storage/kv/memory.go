package kv

import (
	"context"
	"sync"
)

// Memory is an in-process Store, safe for concurrent use. It backs tests
// and the dev fallback when no durable store is configured.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the stored value for key.
func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok, nil
}

// Set stores value under key, replacing any previous value.
func (m *Memory) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
