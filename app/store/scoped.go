package store

import (
	"context"
	"errors"
)

// Scoped exposes one scope of a store as a plain key-value storage.
// A missing key reads as an empty string.
type Scoped struct {
	store Backend
	scope string
}

// Backend is the part of a store Scoped needs.
type Backend interface {
	Get(ctx context.Context, scope, key string) (string, error)
	Set(ctx context.Context, scope, key, value string) error
}

// NewScoped binds a store to a scope.
func NewScoped(st Backend, scope string) *Scoped {
	return &Scoped{store: st, scope: scope}
}

// Get returns the value for key, or "" if it was never set.
func (s *Scoped) Get(ctx context.Context, key string) (string, error) {
	v, err := s.store.Get(ctx, s.scope, key)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err //nolint:wrapcheck // store errors are already wrapped
	}
	return v, nil
}

// Set stores value under key.
func (s *Scoped) Set(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, s.scope, key, value) //nolint:wrapcheck // store errors are already wrapped
}
