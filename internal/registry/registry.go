// Package registry owns the code to URL mapping. Every operation loads the
// store, works on the fresh copy and saves it back while holding one lock, so
// concurrent requests in this process never lose each other's updates.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"shortlinks/internal/domain"
)

const maxGenerateAttempts = 10

// Codes that would shadow a route when used as /:code.
var reservedCodes = map[string]struct{}{
	"health": {},
	"api":    {},
	"slack":  {},
	"debug":  {},
}

const (
	metricLinksCreated    = "links_created"
	metricLinksReused     = "links_reused"
	metricRedirects       = "redirects"
	metricLinkNotFound    = "link_not_found"
	metricStoreLoadFailed = "store_load_failed"
	metricStoreSaveFailed = "store_save_failed"
)

type Registry struct {
	mu        sync.Mutex
	store     Store
	generator CodeGenerator
	validator URLValidator
	index     CodeIndex
	recorder  BusinessRecorder
	logger    *slog.Logger
	now       func() time.Time
}

// New builds a registry. index may be nil.
func New(
	store Store,
	generator CodeGenerator,
	validator URLValidator,
	index CodeIndex,
	recorder BusinessRecorder,
	logger *slog.Logger,
) *Registry {
	return &Registry{
		store:     store,
		generator: generator,
		validator: validator,
		index:     index,
		recorder:  recorder,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// GetOrCreateShortCode returns the code already issued for targetURL or mints
// a new one. A failed save is logged and the new code is still returned.
func (r *Registry) GetOrCreateShortCode(ctx context.Context, targetURL string) (string, error) {
	if err := r.validator.ValidateURL(targetURL); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	links := r.load(ctx)

	if link, ok := r.find(links, targetURL); ok {
		r.recorder.RecordBusiness(metricLinksReused, 1, nil)
		return link.Code, nil
	}

	link, err := r.create(links, targetURL)
	if err != nil {
		return "", err
	}

	r.save(ctx, links, "create")
	r.recorder.RecordBusiness(metricLinksCreated, 1, nil)
	return link.Code, nil
}

// GetOrCreateShortCodes is the batch form of GetOrCreateShortCode. The result
// is index-aligned with targetURLs. The store is saved once, and only when at
// least one link was created.
func (r *Registry) GetOrCreateShortCodes(ctx context.Context, targetURLs []string) ([]string, error) {
	if err := r.validator.ValidateBatch(targetURLs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	links := r.load(ctx)

	codes := make([]string, len(targetURLs))
	var created, reused int
	for i, targetURL := range targetURLs {
		if link, ok := r.find(links, targetURL); ok {
			codes[i] = link.Code
			reused++
			continue
		}

		link, err := r.create(links, targetURL)
		if err != nil {
			return nil, err
		}
		codes[i] = link.Code
		created++
	}

	if created > 0 {
		r.save(ctx, links, "create_batch")
		r.recorder.RecordBusiness(metricLinksCreated, float64(created), map[string]string{"source": "batch"})
	}
	if reused > 0 {
		r.recorder.RecordBusiness(metricLinksReused, float64(reused), map[string]string{"source": "batch"})
	}
	return codes, nil
}

// ResolveAndRecordHit returns the target URL for code and counts the visit.
func (r *Registry) ResolveAndRecordHit(ctx context.Context, code string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	links := r.load(ctx)

	link, ok := links[code]
	if !ok {
		r.recorder.RecordBusiness(metricLinkNotFound, 1, nil)
		return "", fmt.Errorf("%w: %s", ErrNotFound, code)
	}

	link.Clicks++
	links[code] = link

	r.save(ctx, links, "hit")
	r.recorder.RecordBusiness(metricRedirects, 1, nil)
	return link.URL, nil
}

// Lookup returns the stored link for code without counting a visit.
func (r *Registry) Lookup(ctx context.Context, code string) (domain.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	link, ok := r.load(ctx)[code]
	if !ok {
		return domain.Link{}, fmt.Errorf("%w: %s", ErrNotFound, code)
	}
	return link, nil
}

func (r *Registry) load(ctx context.Context) domain.Links {
	links, err := r.store.Load(ctx)
	if err != nil {
		r.logger.Warn("store load failed, continuing with recovered links",
			slog.Int("recovered", len(links)),
			slog.String("error", err.Error()))
		r.recorder.RecordBusiness(metricStoreLoadFailed, 1, nil)
	}
	if links == nil {
		links = domain.Links{}
	}
	return links
}

func (r *Registry) save(ctx context.Context, links domain.Links, op string) {
	if err := r.store.Save(ctx, links); err != nil {
		r.logger.Error("store save failed",
			slog.String("op", op),
			slog.Int("links", len(links)),
			slog.String("error", err.Error()))
		r.recorder.RecordBusiness(metricStoreSaveFailed, 1, map[string]string{"op": op})
	}
}

func (r *Registry) find(links domain.Links, targetURL string) (domain.Link, bool) {
	if r.index != nil {
		if code, ok := r.index.Get(targetURL); ok {
			if link, ok := links[code]; ok && link.URL == targetURL {
				return link, true
			}
		}
	}

	link, ok := links.FindByURL(targetURL)
	if ok && r.index != nil {
		r.index.Set(targetURL, link.Code)
	}
	return link, ok
}

// create mints a fresh code for targetURL and adds the link to links.
func (r *Registry) create(links domain.Links, targetURL string) (domain.Link, error) {
	code, err := r.uniqueCode(links)
	if err != nil {
		return domain.Link{}, err
	}

	link := domain.Link{
		Code:      code,
		URL:       targetURL,
		CreatedAt: r.now(),
	}
	links[code] = link

	if r.index != nil {
		r.index.Set(targetURL, code)
	}
	return link, nil
}

func (r *Registry) uniqueCode(links domain.Links) (string, error) {
	for range maxGenerateAttempts {
		code := r.generator.Generate()
		if code == "" || isReserved(code) {
			continue
		}
		if _, taken := links[code]; taken {
			continue
		}
		return code, nil
	}
	return "", fmt.Errorf("%w after %d attempts", ErrCodeSpaceExhausted, maxGenerateAttempts)
}

func isReserved(code string) bool {
	_, ok := reservedCodes[strings.ToLower(code)]
	return ok
}
