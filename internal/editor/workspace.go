package editor

import (
	"sync"

	"github.com/Zachkp/portfolio/internal/portfolio"
)

// Workspaces keeps the open drafts of each admin session in memory. All
// access to a draft goes through the workspace lock, so concurrent requests
// from one browser cannot interleave edits.
type Workspaces struct {
	store Store

	mu       sync.Mutex
	sessions map[string]map[portfolio.Section]Editor
}

func NewWorkspaces(store Store) *Workspaces {
	return &Workspaces{
		store:    store,
		sessions: make(map[string]map[portfolio.Section]Editor),
	}
}

// Open starts a fresh draft of section for sessionID, discarding any draft
// the session already had for it, and runs fn on it.
func (w *Workspaces) Open(sessionID string, section portfolio.Section, fn func(Editor) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	ed, err := w.open(sessionID, section)
	if err != nil {
		return err
	}
	return fn(ed)
}

// Do runs fn on the session's current draft of section, opening one if the
// session has none.
func (w *Workspaces) Do(sessionID string, section portfolio.Section, fn func(Editor) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	ed, ok := w.sessions[sessionID][section]
	if !ok {
		var err error
		if ed, err = w.open(sessionID, section); err != nil {
			return err
		}
	}
	return fn(ed)
}

// Discard drops every draft held for sessionID.
func (w *Workspaces) Discard(sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.sessions, sessionID)
}

func (w *Workspaces) open(sessionID string, section portfolio.Section) (Editor, error) {
	ed, err := Open(w.store, section)
	if err != nil {
		return nil, err
	}
	drafts, ok := w.sessions[sessionID]
	if !ok {
		drafts = make(map[portfolio.Section]Editor)
		w.sessions[sessionID] = drafts
	}
	drafts[section] = ed
	return ed, nil
}
