// Package storage defines the durable key-value layer that holds the
// persisted content override and the admin password.
package storage

import (
	"context"
	"errors"
)

// Keys shared by every driver.
const (
	KeyPortfolioData = "portfolio_data"
	KeyAdminPassword = "portfolio_admin_password"
)

// ErrUnavailable is returned by drivers that have been closed or disabled.
var ErrUnavailable = errors.New("storage unavailable")

// KV is a string key-value store. Get reports absent keys with ok=false and a
// nil error.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
