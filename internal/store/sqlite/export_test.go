package sqlite

import (
	"context"
	"testing"
)

func InsertRaw(t *testing.T, s *Store, code, url, createdAt string) {
	t.Helper()
	_, err := s.db.ExecContext(context.Background(),
		`INSERT INTO links (code, original_url, created_at, clicks) VALUES (?, ?, ?, 0)`,
		code, url, createdAt)
	if err != nil {
		t.Fatalf("insert raw row: %v", err)
	}
}
