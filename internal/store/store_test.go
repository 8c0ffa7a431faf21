package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlinks/internal/domain"
	"shortlinks/internal/store"
)

func TestEncodeDecode(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 26, 53, 589_000_000, time.UTC)
	links := domain.Links{
		"aB3xY9": {Code: "aB3xY9", URL: "https://example.com/a/b?x=1&y=<2>", CreatedAt: created, Clicks: 7},
		"Qw12Er": {Code: "Qw12Er", URL: "https://example.com/مقالات", CreatedAt: created, Clicks: 0},
	}

	data, err := store.Encode(links)
	require.NoError(t, err)

	// Non-ASCII and HTML characters are written as-is.
	assert.Contains(t, string(data), "https://example.com/مقالات")
	assert.Contains(t, string(data), "y=<2>")
	assert.Contains(t, string(data), `"original_url"`)
	assert.Contains(t, string(data), `"created_at": "2025-03-14T09:26:53.589Z"`)

	got, err := store.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, links, got)
}

func TestDecode_LegacyDocument(t *testing.T) {
	data := []byte(`{
  "abc123": {"original_url": "https://example.com", "created_at": "2024-05-01T12:30:00.123456", "clicks": 3},
  "def456": {"url": "https://example.org", "created": "2024-05-02T08:00:00", "clicks": 0}
}`)

	links, err := store.Decode(data)
	require.NoError(t, err)
	require.Len(t, links, 2)

	assert.Equal(t, "https://example.com", links["abc123"].URL)
	assert.Equal(t, uint64(3), links["abc123"].Clicks)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 30, 0, 123_456_000, time.UTC), links["abc123"].CreatedAt)

	assert.Equal(t, "https://example.org", links["def456"].URL)
	assert.Equal(t, "def456", links["def456"].Code)
}

func TestDecode_Empty(t *testing.T) {
	for _, doc := range []string{"", "   \n", "{}"} {
		links, err := store.Decode([]byte(doc))
		require.NoError(t, err)
		assert.NotNil(t, links)
		assert.Empty(t, links)
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, doc := range []string{"{not json", "[1,2,3]", `"text"`, `{"abc123": 5}`} {
		t.Run(doc, func(t *testing.T) {
			links, err := store.Decode([]byte(doc))
			assert.ErrorIs(t, err, store.ErrCorrupt)
			assert.NotNil(t, links)
			assert.Empty(t, links)
		})
	}
}

func TestDecode_DamagedRecords(t *testing.T) {
	data := []byte(`{
  "good01": {"original_url": "https://example.com", "created_at": "2024-05-01T12:30:00Z", "clicks": 1},
  "": {"original_url": "https://example.com/empty-key", "created_at": "2024-05-01T12:30:00Z", "clicks": 0},
  "nourl1": {"created_at": "2024-05-01T12:30:00Z", "clicks": 0},
  "badts1": {"original_url": "https://example.com/x", "created_at": "yesterday", "clicks": 2},
  "nots01": {"original_url": "https://example.com/y", "clicks": 4}
}`)

	links, err := store.Decode(data)
	assert.ErrorIs(t, err, store.ErrCorrupt)
	assert.ErrorIs(t, err, store.ErrBadTimestamp)
	require.Len(t, links, 3)
	assert.Contains(t, links, "good01")
	assert.NotContains(t, links, "nourl1")

	for code, want := range map[string]domain.Link{
		"badts1": {Code: "badts1", URL: "https://example.com/x", Clicks: 2},
		"nots01": {Code: "nots01", URL: "https://example.com/y", Clicks: 4},
	} {
		assert.Equal(t, want, links[code], code)
		assert.True(t, links[code].CreatedAt.IsZero(), code)
	}
}

func TestRecordLink(t *testing.T) {
	link, err := store.Record{OriginalURL: "https://example.com"}.Link("abc123")
	assert.ErrorIs(t, err, store.ErrBadTimestamp)
	assert.True(t, store.Usable(err))
	assert.Equal(t, "https://example.com", link.URL)

	_, err = store.Record{CreatedAt: "2024-05-01T12:30:00Z"}.Link("abc123")
	assert.Error(t, err)
	assert.False(t, store.Usable(err))

	_, err = store.Record{OriginalURL: "https://example.com"}.Link("")
	assert.False(t, store.Usable(err))
}

func TestDecodeRecord(t *testing.T) {
	link := domain.Link{Code: "aB3xY9", URL: "https://example.com", CreatedAt: time.Unix(1700000000, 0).UTC(), Clicks: 2}

	data, err := store.EncodeRecord(link)
	require.NoError(t, err)

	got, err := store.DecodeRecord("aB3xY9", data)
	require.NoError(t, err)
	assert.Equal(t, link, got)

	_, err = store.DecodeRecord("aB3xY9", []byte("garbage"))
	assert.ErrorIs(t, err, store.ErrCorrupt)
	assert.False(t, store.Usable(err))

	got, err = store.DecodeRecord("aB3xY9", []byte(`{"original_url": "https://example.com", "clicks": 1}`))
	assert.ErrorIs(t, err, store.ErrCorrupt)
	assert.True(t, store.Usable(err))
	assert.Equal(t, "https://example.com", got.URL)
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-05-01T12:30:00Z", time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)},
		{"2024-05-01T14:30:00+02:00", time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)},
		{"2024-05-01T12:30:00.5", time.Date(2024, 5, 1, 12, 30, 0, 500_000_000, time.UTC)},
		{"2024-05-01 12:30:00", time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := store.ParseTime(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, tt.want.Equal(got), "%s: got %s", tt.in, got)
		assert.Equal(t, time.UTC, got.Location())
	}

	_, err := store.ParseTime("05/01/2024")
	assert.Error(t, err)
}
