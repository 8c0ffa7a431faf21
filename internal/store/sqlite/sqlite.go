// Package sqlite stores links in a SQLite database, either a local file through
// modernc.org/sqlite or a remote libSQL (Turso) database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql" // remote libSQL driver
	_ "modernc.org/sqlite"                               // local SQLite driver

	"shortlinks/internal/domain"
	"shortlinks/internal/store"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS links (
		code TEXT PRIMARY KEY,
		original_url TEXT NOT NULL,
		created_at TEXT NOT NULL,
		clicks INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_links_original_url ON links(original_url)`,
}

const upsertLink = `
	INSERT INTO links (code, original_url, created_at, clicks)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(code) DO UPDATE SET clicks = max(links.clicks, excluded.clicks)`

type Store struct {
	db *sql.DB
}

func Open(ctx context.Context, dsn string) (*Store, error) {
	driverName := "sqlite"
	if strings.HasPrefix(dsn, "libsql://") || strings.HasPrefix(dsn, "wss://") {
		driverName = "libsql"
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driverName, err)
	}
	if driverName == "sqlite" {
		// One writer at a time; the registry already serializes access.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Load(ctx context.Context) (domain.Links, error) {
	links := domain.Links{}

	rows, err := s.db.QueryContext(ctx, `SELECT code, original_url, created_at, clicks FROM links`)
	if err != nil {
		return links, fmt.Errorf("%w: query links: %w", store.ErrIO, err)
	}
	defer rows.Close()

	var bad []error
	for rows.Next() {
		var (
			code   string
			rec    store.Record
			clicks int64
		)
		if err := rows.Scan(&code, &rec.OriginalURL, &rec.CreatedAt, &clicks); err != nil {
			bad = append(bad, err)
			continue
		}
		rec.Clicks = uint64(max(clicks, 0))

		link, err := rec.Link(code)
		if err != nil {
			bad = append(bad, err)
		}
		if store.Usable(err) {
			links[code] = link
		}
	}
	if err := rows.Err(); err != nil {
		return domain.Links{}, fmt.Errorf("%w: read links: %w", store.ErrIO, err)
	}
	if len(bad) > 0 {
		return links, fmt.Errorf("%w: %d damaged rows: %w", store.ErrCorrupt, len(bad), errors.Join(bad...))
	}
	return links, nil
}

// Save upserts every link. Rows missing from links are left in place, and a row's
// click count never goes down.
func (s *Store) Save(ctx context.Context, links domain.Links) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", store.ErrIO, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, upsertLink)
	if err != nil {
		return fmt.Errorf("%w: prepare upsert: %w", store.ErrIO, err)
	}
	defer stmt.Close()

	for code, link := range links {
		if _, err = stmt.ExecContext(ctx, code, link.URL, store.FormatTime(link.CreatedAt), int64(link.Clicks)); err != nil {
			return fmt.Errorf("%w: upsert %s: %w", store.ErrIO, code, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", store.ErrIO, err)
	}
	return nil
}
