// Package memory is an in-process storage driver used for tests and for
// running the site without any durable state.
package memory

import (
	"context"
	"sync"

	"github.com/Zachkp/portfolio/internal/storage"
)

// Store keeps values in a map. FailWrites lets tests exercise save-failure
// paths.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
	setErr error
	closed bool
}

func New() *Store {
	return &Store{values: make(map[string]string)}
}

// FailWrites makes subsequent Set and Remove calls return err. Passing nil
// restores normal behaviour.
func (s *Store) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setErr = err
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", false, storage.ErrUnavailable
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrUnavailable
	}
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrUnavailable
	}
	if s.setErr != nil {
		return s.setErr
	}
	delete(s.values, key)
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

var _ storage.KV = (*Store)(nil)
