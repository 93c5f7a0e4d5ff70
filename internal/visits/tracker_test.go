package visits

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/storage/sqlite"
)

func newTestTracker(t *testing.T, now time.Time) *Tracker {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "visits.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	hasher, err := NewHasher()
	require.NoError(t, err)
	tr := NewTracker(store.DB(), hasher, slog.New(slog.NewTextHandler(io.Discard, nil)))
	tr.now = func() time.Time { return now }
	return tr
}

func TestHashIsStableAndTruncated(t *testing.T) {
	h, err := NewHasher()
	require.NoError(t, err)

	a := h.Hash("203.0.113.7")
	assert.Len(t, a, 16)
	assert.Equal(t, a, h.Hash("203.0.113.7"))
	assert.NotEqual(t, a, h.Hash("203.0.113.8"))

	other, err := NewHasher()
	require.NoError(t, err)
	assert.NotEqual(t, a, other.Hash("203.0.113.7"))
}

func TestRecordAndStats(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, now)

	// Two days ago, then today.
	tr.now = func() time.Time { return now.Add(-48 * time.Hour) }
	require.NoError(t, tr.Record(ctx, "10.0.0.1", "curl", "/"))
	tr.now = func() time.Time { return now }
	require.NoError(t, tr.Record(ctx, "10.0.0.1", "curl", "/"))
	require.NoError(t, tr.Record(ctx, "10.0.0.2", "firefox", "/"))

	stats, err := tr.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalVisitors)
	assert.EqualValues(t, 2, stats.UniqueVisitors)
	assert.EqualValues(t, 2, stats.VisitorsToday)
	assert.EqualValues(t, 3, stats.VisitorsThisWeek)
	require.Len(t, stats.RecentVisitors, 3)
	assert.Equal(t, "firefox", stats.RecentVisitors[0].UserAgent)
	assert.WithinDuration(t, now, stats.RecentVisitors[0].Timestamp, time.Second)
	assert.Equal(t, tr.hasher.Hash("10.0.0.2"), stats.RecentVisitors[0].HashedIP)
}

func TestCleanupRemovesOldVisits(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, now)

	tr.now = func() time.Time { return now.AddDate(-2, 0, 0) }
	require.NoError(t, tr.Record(ctx, "10.0.0.1", "old", "/"))
	tr.now = func() time.Time { return now }
	require.NoError(t, tr.Record(ctx, "10.0.0.1", "new", "/"))

	n, err := tr.Cleanup(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	recent, err := tr.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "new", recent[0].UserAgent)
}

func TestTrackable(t *testing.T) {
	cases := []struct {
		path string
		dnt  string
		want bool
	}{
		{"/", "", true},
		{"/", "1", false},
		{"/", "0", true},
		{"/static/app.css", "", false},
		{"/images/me.png", "", false},
		{"/admin", "", false},
		{"/admin/sections/hero", "", false},
		{"/favicon.ico", "", false},
		{"/privacy", "", false},
		{"/healthz", "", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Trackable(tc.path, tc.dnt), "%s dnt=%q", tc.path, tc.dnt)
	}
}

func TestNopRecorder(t *testing.T) {
	ctx := context.Background()
	var r Recorder = NopRecorder{}

	require.NoError(t, r.Record(ctx, "ip", "ua", "/"))
	stats, err := r.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalVisitors)
	n, err := r.Cleanup(ctx, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, n)
}
