// Package store provides persistent preference storage implementations.
package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when a key is not found in the store.
var ErrNotFound = errors.New("key not found")

// Interface is a key-value store partitioned by scope (one scope per visitor).
type Interface interface {
	Get(ctx context.Context, scope, key string) (string, error)
	Set(ctx context.Context, scope, key, value string) error
	Close() error
}

// RWLocker is the lock used to serialize database access.
type RWLocker interface {
	sync.Locker
	RLock()
	RUnlock()
}

// noopLocker is used when the database handles concurrent writers itself.
type noopLocker struct{}

func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}
func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}
