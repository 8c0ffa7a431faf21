package cache

import (
	"github.com/dgraph-io/ristretto"
)

// CodeCache remembers which short code was issued for a target URL.
// Entries are hints: callers must confirm them against the store.
type CodeCache struct {
	cache *ristretto.Cache
}

func New(maxSizePow2 int) (*CodeCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &CodeCache{cache: cache}, nil
}

func (c *CodeCache) Get(targetURL string) (string, bool) {
	val, found := c.cache.Get(targetURL)
	if !found {
		return "", false
	}
	code, ok := val.(string)
	return code, ok
}

func (c *CodeCache) Set(targetURL, code string) {
	c.cache.Set(targetURL, code, int64(len(targetURL)+len(code)))
}

// Wait blocks until buffered writes are applied.
func (c *CodeCache) Wait() {
	c.cache.Wait()
}

func (c *CodeCache) Close() {
	c.cache.Close()
}

func (c *CodeCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	return metrics.Hits(), metrics.Misses(), metrics.Ratio()
}
