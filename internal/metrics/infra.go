package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CacheStats interface {
	Stats() (hits, misses uint64, ratio float64)
}

// SnapshotInfra reads pool, cache and runtime gauges. pool may be nil when
// links are not stored in PostgreSQL.
func SnapshotInfra(pool *pgxpool.Pool, cache CacheStats) InfraMetric {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	m := InfraMetric{
		Time:        time.Now(),
		Goroutines:  runtime.NumGoroutine(),
		HeapAllocMB: float64(memStats.HeapAlloc) / 1024 / 1024,
	}

	if pool != nil {
		stat := pool.Stat()
		m.PoolAcquired = int(stat.AcquiredConns())
		m.PoolIdle = int(stat.IdleConns())
		m.PoolTotal = int(stat.TotalConns())
		m.PoolMax = int(stat.MaxConns())
	}

	if cache != nil {
		hits, misses, ratio := cache.Stats()
		m.CacheHits = int64(hits)
		m.CacheMisses = int64(misses)
		m.CacheHitRatio = ratio
	}

	return m
}

// CollectInfra records a snapshot every interval until ctx is done.
func (r *Recorder) CollectInfra(ctx context.Context, interval time.Duration, pool *pgxpool.Pool, cache CacheStats) {
	if !r.enabled {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.RecordInfra(SnapshotInfra(pool, cache))
		}
	}
}
