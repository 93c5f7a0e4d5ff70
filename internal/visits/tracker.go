// Package visits records privacy-conscious page views for the admin
// dashboard. Client IPs are never stored: only a salted, truncated SHA-256.
package visits

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// Visit is one recorded page view.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats summarises the visitor log.
type Stats struct {
	TotalVisitors    int64   `json:"total_visitors"`
	UniqueVisitors   int64   `json:"unique_visitors"`
	VisitorsToday    int64   `json:"visitors_today"`
	VisitorsThisWeek int64   `json:"visitors_this_week"`
	RecentVisitors   []Visit `json:"recent_visitors"`
}

// Recorder is what the web layer needs. NopRecorder satisfies it when
// tracking is disabled.
type Recorder interface {
	Record(ctx context.Context, ip, userAgent, path string) error
	Stats(ctx context.Context) (*Stats, error)
	Cleanup(ctx context.Context, retention time.Duration) (int64, error)
}

// Hasher pseudonymises client IPs with a random per-process salt, so hashes
// are only comparable within one process lifetime.
type Hasher struct {
	salt string
}

func NewHasher() (*Hasher, error) {
	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate hashing salt: %w", err)
	}
	return &Hasher{salt: hex.EncodeToString(salt)}, nil
}

// Hash returns the first 16 hex characters of sha256(ip + salt).
func (h *Hasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Tracker stores visits in the visitors table created by the sqlite storage
// migrations.
type Tracker struct {
	db     *sql.DB
	hasher *Hasher
	logger *slog.Logger
	now    func() time.Time
}

func NewTracker(db *sql.DB, hasher *Hasher, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		db:     db,
		hasher: hasher,
		logger: logger,
		now:    time.Now,
	}
}

func (t *Tracker) Record(ctx context.Context, ip, userAgent, path string) error {
	_, err := t.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, t.hasher.Hash(ip), userAgent, path, t.now().UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

func (t *Tracker) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	now := t.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts := []struct {
		dest  *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{startOfDay.Format(timeLayout)}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{now.Add(-7 * 24 * time.Hour).Format(timeLayout)}},
	}
	for _, c := range counts {
		if err := t.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("visitor stats: %w", err)
		}
	}

	recent, err := t.Recent(ctx, 50)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = recent
	return stats, nil
}

// Recent returns up to limit visits, newest first.
func (t *Tracker) Recent(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := t.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var ts any
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			t.logger.Warn("skipping unreadable visit row", "error", err)
			continue
		}
		v.Timestamp = parseTimestamp(ts)
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// The driver hands DATETIME columns back as time.Time when it can parse them
// and as text otherwise.
func parseTimestamp(v any) time.Time {
	switch ts := v.(type) {
	case time.Time:
		return ts.UTC()
	case string:
		parsed, _ := time.Parse(timeLayout, ts)
		return parsed
	case []byte:
		parsed, _ := time.Parse(timeLayout, string(ts))
		return parsed
	}
	return time.Time{}
}

// Cleanup deletes visits older than retention and returns how many rows went.
func (t *Tracker) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := t.now().UTC().Add(-retention).Format(timeLayout)
	res, err := t.db.ExecContext(ctx, `DELETE FROM visitors WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup visits: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		t.logger.Info("privacy cleanup removed old visitor records", "rows", n, "retention", retention)
	}
	return n, nil
}

// Trackable reports whether a request should be recorded: static assets,
// admin pages and clients sending DNT: 1 are skipped.
func Trackable(path, dnt string) bool {
	if dnt == "1" {
		return false
	}
	for _, prefix := range []string{"/static/", "/images/", "/admin", "/favicon", "/privacy", "/healthz"} {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// NopRecorder discards visits.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, string, string, string) error { return nil }

func (NopRecorder) Stats(context.Context) (*Stats, error) { return &Stats{}, nil }

func (NopRecorder) Cleanup(context.Context, time.Duration) (int64, error) { return 0, nil }

var (
	_ Recorder = (*Tracker)(nil)
	_ Recorder = NopRecorder{}
)
