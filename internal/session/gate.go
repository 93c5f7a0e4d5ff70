// Package session implements the admin login gate.
//
// The gate only decides whether the admin editor is rendered. The password
// is stored in plain text next to the content it guards and is compared byte
// for byte; anyone with access to the storage backend can read or replace
// it. Do not use it to protect anything the public page does not already
// show.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/storage"
)

// DefaultPassword is used whenever no password has been persisted. Change it
// right after the first login.
const DefaultPassword = "admin123"

// Gate tracks which browser sessions are authenticated. Flags live in
// process memory and are lost on restart; the password lives in kv.
type Gate struct {
	kv              storage.KV
	defaultPassword string
	logger          *slog.Logger

	mu            sync.RWMutex
	authenticated map[string]struct{}
}

// NewGate returns a gate with every session unauthenticated. An empty
// defaultPassword selects DefaultPassword.
func NewGate(kv storage.KV, defaultPassword string, logger *slog.Logger) *Gate {
	if defaultPassword == "" {
		defaultPassword = DefaultPassword
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{
		kv:              kv,
		defaultPassword: defaultPassword,
		logger:          logger,
		authenticated:   make(map[string]struct{}),
	}
}

// NewSessionID returns a fresh identifier for a browser session.
func NewSessionID() string {
	return uuid.NewString()
}

// DefaultPassword returns the password in effect until one is changed.
func (g *Gate) DefaultPassword() string {
	return g.defaultPassword
}

// UsingDefaultPassword reports whether no password override is persisted.
func (g *Gate) UsingDefaultPassword(ctx context.Context) (bool, error) {
	stored, ok, err := g.kv.Get(ctx, storage.KeyAdminPassword)
	if err != nil {
		return false, fmt.Errorf("read admin password: %w", err)
	}
	return !ok || stored == "", nil
}

func (g *Gate) effectivePassword(ctx context.Context) (string, error) {
	stored, ok, err := g.kv.Get(ctx, storage.KeyAdminPassword)
	if err != nil {
		return "", fmt.Errorf("read admin password: %w", err)
	}
	// An empty stored value counts as unset.
	if !ok || stored == "" {
		return g.defaultPassword, nil
	}
	return stored, nil
}

// Login authenticates sessionID when password equals the effective password.
// A mismatch leaves the session unchanged and returns false.
func (g *Gate) Login(ctx context.Context, sessionID, password string) (bool, error) {
	want, err := g.effectivePassword(ctx)
	if err != nil {
		return false, err
	}
	if password != want {
		return false, nil
	}

	g.mu.Lock()
	g.authenticated[sessionID] = struct{}{}
	g.mu.Unlock()
	return true, nil
}

// Logout clears the flag for sessionID. It is safe to call for sessions that
// never logged in.
func (g *Gate) Logout(sessionID string) {
	g.mu.Lock()
	delete(g.authenticated, sessionID)
	g.mu.Unlock()
}

func (g *Gate) IsAuthenticated(sessionID string) bool {
	if sessionID == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.authenticated[sessionID]
	return ok
}

// ChangePassword persists newPassword when oldPassword equals the effective
// password. It does not look at any session: callers that want to require a
// logged-in admin must check IsAuthenticated themselves.
func (g *Gate) ChangePassword(ctx context.Context, oldPassword, newPassword string) (bool, error) {
	current, err := g.effectivePassword(ctx)
	if err != nil {
		return false, err
	}
	if oldPassword != current {
		return false, nil
	}
	if err := g.kv.Set(ctx, storage.KeyAdminPassword, newPassword); err != nil {
		return false, fmt.Errorf("store admin password: %w", err)
	}
	g.logger.Info("admin password changed")
	return true, nil
}
