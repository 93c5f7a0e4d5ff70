// Package content holds the single authority for reading and writing the
// portfolio document. The store starts from the built-in default, overlays
// whatever override was last persisted, and writes through on every change.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Zachkp/portfolio/internal/portfolio"
	"github.com/Zachkp/portfolio/internal/storage"
)

// ErrPersist wraps storage failures on write. The in-memory document has
// already changed when it is returned.
var ErrPersist = errors.New("persist portfolio data")

// Store is safe for concurrent use. Separate processes sharing a storage
// backend do not see each other's writes until they reload; the last writer
// wins.
type Store struct {
	kv     storage.KV
	logger *slog.Logger

	mu   sync.RWMutex
	data portfolio.Data
}

// New builds a store from the default document merged with the persisted
// override in kv. A missing, unreadable or malformed override is never an
// error: the default is used and the problem is logged.
func New(ctx context.Context, kv storage.KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{kv: kv, logger: logger}
	s.data = s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) portfolio.Data {
	raw, ok, err := s.kv.Get(ctx, storage.KeyPortfolioData)
	if err != nil {
		s.logger.Warn("read persisted portfolio data, using defaults", "error", err)
		return portfolio.Default()
	}
	if !ok {
		return portfolio.Default()
	}

	data, err := Merge(portfolio.Default(), []byte(raw))
	if err != nil {
		s.logger.Warn("discarding malformed portfolio data, using defaults", "error", err)
		return portfolio.Default()
	}
	return data
}

// Merge overlays the JSON object override onto base one top-level section at
// a time. Sections absent from the override keep the base value; unknown keys
// are ignored. Any present section that does not decode into its type fails
// the whole merge.
func Merge(base portfolio.Data, override []byte) (portfolio.Data, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(override, &fields); err != nil {
		return base, fmt.Errorf("parse override: %w", err)
	}
	if fields == nil {
		return base, fmt.Errorf("parse override: not an object")
	}

	var patch portfolio.Patch
	for _, section := range portfolio.Sections() {
		raw, ok := fields[string(section)]
		if !ok {
			continue
		}
		if err := patch.Decode(section, raw); err != nil {
			return base, err
		}
	}
	return patch.Apply(base), nil
}

// Data returns a deep copy of the current document.
func (s *Store) Data() portfolio.Data {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Section returns a copy of one section of the current document.
func (s *Store) Section(section portfolio.Section) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Get(section)
}

// UpdateSection replaces one section wholesale with value, which must have
// the section's type (or be a pointer to it), then persists the document.
func (s *Store) UpdateSection(ctx context.Context, section portfolio.Section, value any) error {
	var patch portfolio.Patch
	if err := patch.Set(section, value); err != nil {
		return err
	}
	return s.UpdateData(ctx, patch)
}

// UpdateData replaces every section present in patch, then persists the
// document once.
func (s *Store) UpdateData(ctx context.Context, patch portfolio.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = patch.Apply(s.data)
	return s.persist(ctx)
}

// ResetToDefault restores the built-in document and deletes the persisted
// override.
func (s *Store) ResetToDefault(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = portfolio.Default()
	if err := s.kv.Remove(ctx, storage.KeyPortfolioData); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// Reload re-reads the persisted override, picking up writes made by another
// process sharing the same storage.
func (s *Store) Reload(ctx context.Context) {
	data := s.load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
}

// persist must be called with mu held.
func (s *Store) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrPersist, err)
	}
	if err := s.kv.Set(ctx, storage.KeyPortfolioData, string(raw)); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}
