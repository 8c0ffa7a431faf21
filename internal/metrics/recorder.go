package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"shortlinks/internal/config"
)

// Copier bulk-inserts rows. *pgxpool.Pool satisfies it.
type Copier interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

type Recorder struct {
	copier       Copier
	logger       *slog.Logger
	cfg          *config.MetricsConfig
	enabled      bool
	http         *batcher[HTTPMetric]
	business     *batcher[BusinessMetric]
	infra        *batcher[InfraMetric]
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewRecorder returns a recorder that writes through copier. With a nil copier
// or cfg.Enabled unset every Record call is a no-op.
func NewRecorder(copier Copier, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	return &Recorder{
		copier:     copier,
		logger:     logger,
		cfg:        cfg,
		enabled:    cfg.Enabled && copier != nil,
		http:       newBatcher[HTTPMetric]("http_metrics", httpColumns, cfg.BufferSize),
		business:   newBatcher[BusinessMetric]("business_metrics", businessColumns, cfg.BufferSize),
		infra:      newBatcher[InfraMetric]("infra_metrics", infraColumns, cfg.BufferSize),
		shutdownCh: make(chan struct{}),
	}
}

func (r *Recorder) Enabled() bool {
	return r.enabled
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if r.enabled {
		r.http.offer(m, r.logger)
	}
}

func (r *Recorder) RecordBusiness(name string, value float64, labels map[string]string) {
	if !r.enabled {
		return
	}
	r.business.offer(BusinessMetric{
		Time:       time.Now(),
		MetricName: name,
		Value:      value,
		Labels:     labels,
	}, r.logger)
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	if r.enabled {
		r.infra.offer(m, r.logger)
	}
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.enabled {
		r.logger.Info("metrics recording disabled")
		return
	}

	flushInterval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(3)
	go runBatcher(ctx, r, r.http, flushInterval)
	go runBatcher(ctx, r, r.business, flushInterval)
	go runBatcher(ctx, r, r.infra, flushInterval)

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

// Close stops the flushers after writing whatever is still buffered.
func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

type metric interface {
	row() []any
}

type batcher[T metric] struct {
	table   string
	columns []string
	ch      chan T
}

func newBatcher[T metric](table string, columns []string, size int) *batcher[T] {
	return &batcher[T]{table: table, columns: columns, ch: make(chan T, size)}
}

func (b *batcher[T]) offer(m T, logger *slog.Logger) {
	select {
	case b.ch <- m:
	default:
		logger.Warn("metrics buffer full, dropping metric", slog.String("table", b.table))
	}
}

func runBatcher[T metric](ctx context.Context, r *Recorder, b *batcher[T], interval time.Duration) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]T, 0, r.cfg.FlushThreshold)

	for {
		select {
		case <-ctx.Done():
			drainAndFlush(r, b, batch)
			return
		case <-r.shutdownCh:
			drainAndFlush(r, b, batch)
			return
		case m := <-b.ch:
			batch = append(batch, m)
			if len(batch) >= r.cfg.FlushThreshold {
				writeBatch(ctx, r, b, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				writeBatch(ctx, r, b, batch)
				batch = batch[:0]
			}
		}
	}
}

func drainAndFlush[T metric](r *Recorder, b *batcher[T], batch []T) {
	for {
		select {
		case m := <-b.ch:
			batch = append(batch, m)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				writeBatch(ctx, r, b, batch)
				cancel()
			}
			return
		}
	}
}

func writeBatch[T metric](ctx context.Context, r *Recorder, b *batcher[T], batch []T) {
	if len(batch) == 0 {
		return
	}

	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = m.row()
	}

	if _, err := r.copier.CopyFrom(ctx, pgx.Identifier{b.table}, b.columns, pgx.CopyFromRows(rows)); err != nil {
		r.logger.Error("failed to write metrics batch",
			slog.String("table", b.table),
			slog.Int("rows", len(rows)),
			slog.String("error", err.Error()))
	}
}
