package registry

import (
	"context"

	"shortlinks/internal/domain"
)

//go:generate go tool mockery

// Store loads and saves the whole code to link mapping. Load returns a usable,
// possibly empty, mapping even when it also returns an error.
type Store interface {
	Load(ctx context.Context) (domain.Links, error)
	Save(ctx context.Context, links domain.Links) error
}

type CodeGenerator interface {
	Generate() string
}

type URLValidator interface {
	ValidateURL(rawURL string) error
	ValidateBatch(urls []string) error
}

// CodeIndex remembers which code was issued for a target URL.
type CodeIndex interface {
	Get(targetURL string) (string, bool)
	Set(targetURL, code string)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
