package metrics

import (
	"encoding/json"
	"time"
)

type HTTPMetric struct {
	Time       time.Time
	Method     string
	Path       string
	StatusCode int
	DurationMs float64
	ClientIP   string
	RequestID  string
	Error      string
}

type BusinessMetric struct {
	Time       time.Time
	MetricName string
	Value      float64
	Labels     map[string]string
}

type InfraMetric struct {
	Time          time.Time
	PoolAcquired  int
	PoolIdle      int
	PoolTotal     int
	PoolMax       int
	CacheHits     int64
	CacheMisses   int64
	CacheHitRatio float64
	Goroutines    int
	HeapAllocMB   float64
}

var (
	httpColumns = []string{
		"time", "method", "path", "status_code", "duration_ms", "client_ip", "request_id", "error",
	}
	businessColumns = []string{"time", "metric_name", "value", "labels"}
	infraColumns    = []string{
		"time", "pool_acquired", "pool_idle", "pool_total", "pool_max",
		"cache_hits", "cache_misses", "cache_hit_ratio", "goroutines", "heap_alloc_mb",
	}
)

func (m HTTPMetric) row() []any {
	return []any{m.Time, m.Method, m.Path, m.StatusCode, m.DurationMs, m.ClientIP, m.RequestID, m.Error}
}

func (m BusinessMetric) row() []any {
	var labels []byte
	if len(m.Labels) > 0 {
		labels, _ = json.Marshal(m.Labels)
	}
	return []any{m.Time, m.MetricName, m.Value, labels}
}

func (m InfraMetric) row() []any {
	return []any{
		m.Time, m.PoolAcquired, m.PoolIdle, m.PoolTotal, m.PoolMax,
		m.CacheHits, m.CacheMisses, m.CacheHitRatio, m.Goroutines, m.HeapAllocMB,
	}
}
