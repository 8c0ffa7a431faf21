package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlinks/internal/domain"
	"shortlinks/internal/store"
	"shortlinks/internal/store/sqlite"
)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "links.db")
	s, err := sqlite.Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoad_Empty(t *testing.T) {
	s := openStore(t)

	links, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, links)
	assert.Empty(t, links)
}

func TestSaveThenLoad(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	links := domain.Links{
		"aB3xY9": {Code: "aB3xY9", URL: "https://example.com/a", CreatedAt: created, Clicks: 0},
		"Qw12Er": {Code: "Qw12Er", URL: "https://example.com/مرحبا", CreatedAt: created, Clicks: 5},
	}
	require.NoError(t, s.Save(ctx, links))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, links, got)
}

func TestSave_UpdatesClicks(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	link := domain.Link{Code: "aB3xY9", URL: "https://example.com/a", CreatedAt: time.Now().UTC().Truncate(time.Second)}

	require.NoError(t, s.Save(ctx, domain.Links{link.Code: link}))

	link.Clicks = 3
	require.NoError(t, s.Save(ctx, domain.Links{link.Code: link}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), got[link.Code].Clicks)
}

func TestSave_NeverLowersClicksOrDeletes(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, s.Save(ctx, domain.Links{
		"keep01": {Code: "keep01", URL: "https://example.com/keep", CreatedAt: now, Clicks: 9},
		"other2": {Code: "other2", URL: "https://example.com/other", CreatedAt: now},
	}))

	// A save built from a degraded, empty load must not wipe what is stored.
	require.NoError(t, s.Save(ctx, domain.Links{
		"keep01": {Code: "keep01", URL: "https://example.com/keep", CreatedAt: now, Clicks: 1},
	}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, uint64(9), got["keep01"].Clicks)
}

func TestLoad_DamagedRows(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "links.db")
	ctx := context.Background()

	s, err := sqlite.Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Save(ctx, domain.Links{
		"good01": {Code: "good01", URL: "https://example.com", CreatedAt: time.Now().UTC()},
	}))
	sqlite.InsertRaw(t, s, "badts1", "https://example.com/x", "not a time")
	sqlite.InsertRaw(t, s, "nourl1", "", "2024-05-01T12:30:00Z")

	links, err := s.Load(ctx)
	assert.ErrorIs(t, err, store.ErrCorrupt)
	assert.Len(t, links, 2)
	assert.Contains(t, links, "good01")
	assert.NotContains(t, links, "nourl1")
	require.Contains(t, links, "badts1")
	assert.Equal(t, "https://example.com/x", links["badts1"].URL)
	assert.True(t, links["badts1"].CreatedAt.IsZero())
}
