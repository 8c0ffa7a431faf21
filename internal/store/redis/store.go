// Package redis keeps every link as one field of a Redis hash. Field names are
// short codes and values are the JSON record used by the file store.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"shortlinks/internal/config"
	"shortlinks/internal/domain"
	"shortlinks/internal/store"
)

type Store struct {
	client *redis.Client
	key    string
}

func New(ctx context.Context, cfg *config.RedisConfig) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Store{client: client, key: cfg.Key}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Load(ctx context.Context) (domain.Links, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return domain.Links{}, fmt.Errorf("%w: hgetall %s: %w", store.ErrIO, s.key, err)
	}

	links := make(domain.Links, len(fields))
	var bad []error
	for code, raw := range fields {
		link, err := store.DecodeRecord(code, []byte(raw))
		if err != nil {
			bad = append(bad, err)
		}
		if store.Usable(err) {
			links[code] = link
		}
	}
	if len(bad) > 0 {
		return links, fmt.Errorf("%d damaged records: %w", len(bad), errors.Join(bad...))
	}
	return links, nil
}

// Save writes every link with a single HSET. Fields not in links are kept.
func (s *Store) Save(ctx context.Context, links domain.Links) error {
	if len(links) == 0 {
		return nil
	}

	values := make(map[string]any, len(links))
	for code, link := range links {
		data, err := store.EncodeRecord(link)
		if err != nil {
			return fmt.Errorf("%w: encode %s: %w", store.ErrIO, code, err)
		}
		values[code] = data
	}

	if err := s.client.HSet(ctx, s.key, values).Err(); err != nil {
		return fmt.Errorf("%w: hset %s: %w", store.ErrIO, s.key, err)
	}
	return nil
}
