package handler

import (
	"context"

	"shortlinks/internal/domain"
)

//go:generate go tool mockery

type LinkService interface {
	GetOrCreateShortCode(ctx context.Context, targetURL string) (string, error)
	GetOrCreateShortCodes(ctx context.Context, targetURLs []string) ([]string, error)
	ResolveAndRecordHit(ctx context.Context, code string) (string, error)
	Lookup(ctx context.Context, code string) (domain.Link, error)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
