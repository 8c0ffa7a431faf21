// Package postgres stores links in PostgreSQL through a pgx connection pool.
// The same pool backs the metrics recorder.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shortlinks/internal/config"
	"shortlinks/internal/domain"
	"shortlinks/internal/store"
)

const (
	createStage = `CREATE TEMP TABLE links_stage (LIKE links INCLUDING DEFAULTS) ON COMMIT DROP`

	mergeStage = `
		INSERT INTO links (code, original_url, created_at, clicks)
		SELECT code, original_url, created_at, clicks FROM links_stage
		ON CONFLICT (code) DO UPDATE SET clicks = GREATEST(links.clicks, EXCLUDED.clicks)`
)

type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, cfg *config.DatabaseConfig) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	return connect(ctx, poolCfg)
}

// NewFromURL connects to an already formatted connection string.
func NewFromURL(ctx context.Context, databaseURL string) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	return connect(ctx, poolCfg)
}

func connect(ctx context.Context, poolCfg *pgxpool.Config) (*Store, error) {
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Load(ctx context.Context) (domain.Links, error) {
	rows, err := s.pool.Query(ctx, `SELECT code, original_url, created_at, clicks FROM links`)
	if err != nil {
		return domain.Links{}, fmt.Errorf("%w: query links: %w", store.ErrIO, err)
	}

	collected, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Link, error) {
		var (
			link   domain.Link
			clicks int64
		)
		err := row.Scan(&link.Code, &link.URL, &link.CreatedAt, &clicks)
		link.CreatedAt = link.CreatedAt.UTC()
		link.Clicks = uint64(max(clicks, 0))
		return link, err
	})
	if err != nil {
		return domain.Links{}, fmt.Errorf("%w: read links: %w", store.ErrIO, err)
	}

	links := make(domain.Links, len(collected))
	for _, link := range collected {
		links[link.Code] = link
	}
	return links, nil
}

// Save streams links into a staging table with COPY and merges them into links.
// Existing rows are never removed and their click counts never decrease.
func (s *Store) Save(ctx context.Context, links domain.Links) error {
	if len(links) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(links))
	for code, link := range links {
		rows = append(rows, []any{code, link.URL, link.CreatedAt.UTC(), int64(link.Clicks)})
	}

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, createStage); err != nil {
			return fmt.Errorf("create stage: %w", err)
		}
		if _, err := tx.CopyFrom(ctx,
			pgx.Identifier{"links_stage"},
			[]string{"code", "original_url", "created_at", "clicks"},
			pgx.CopyFromRows(rows),
		); err != nil {
			return fmt.Errorf("copy links: %w", err)
		}
		if _, err := tx.Exec(ctx, mergeStage); err != nil {
			return fmt.Errorf("merge links: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrIO, err)
	}
	return nil
}
