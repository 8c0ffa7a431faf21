package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"

	"shortlinks/internal/cache"
	"shortlinks/internal/config"
	"shortlinks/internal/handler"
	"shortlinks/internal/messages"
	"shortlinks/internal/metrics"
	custommiddleware "shortlinks/internal/middleware"
	"shortlinks/internal/registry"
	"shortlinks/internal/shortener"
	"shortlinks/internal/store/file"
	"shortlinks/internal/store/postgres"
	"shortlinks/internal/store/redis"
	"shortlinks/internal/store/sqlite"
	"shortlinks/internal/validation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	links, err := openStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Store.Driver, err)
	}
	defer links.close()

	codeCache, err := cache.New(cfg.Cache.MaxSizePow2)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}
	defer codeCache.Close()

	// Metrics tables live next to the links table, so they are only written
	// when links are stored in PostgreSQL.
	var copier metrics.Copier
	if links.pool != nil {
		copier = links.pool
	}
	recorder := metrics.NewRecorder(copier, &cfg.Metrics, logger)
	recorder.Start(ctx)
	defer recorder.Close()

	go recorder.CollectInfra(ctx, 10*time.Second, links.pool, codeCache)

	urlValidator := validation.NewURLValidator(
		cfg.Validation.MaxURLLength,
		cfg.Validation.MaxBatchSize,
		cfg.Validation.AllowPrivateIPs,
	)

	reg := registry.New(
		links.Store,
		shortener.New(cfg.App.CodeLength),
		urlValidator,
		codeCache,
		recorder,
		logger,
	)
	h := handler.New(reg, messages.New(cfg.App.Lang), cfg.App.BaseURL, logger, recorder)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.RequestLogger(logger))
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(custommiddleware.Metrics(recorder))

	h.Register(e)

	if cfg.Pprof.Enabled {
		custommiddleware.MountPprof(e, cfg.Pprof.Secret)
		logger.Info("pprof endpoints enabled", slog.String("path", "/debug/pprof/*"))
	}

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.String("store", cfg.Store.Driver),
		slog.String("base_url", cfg.App.BaseURL),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	httpListener, err := listen(httpAddr, cfg.Server.MaxConnections)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}

	httpServer := newServer(e)
	go func() {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", slog.String("error", err.Error()))
		}
	}()

	var httpsServer *http.Server
	if cfg.TLS.Enabled {
		httpsAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.TLS.Port)
		logger.Info("starting HTTPS server",
			slog.String("addr", httpsAddr),
			slog.Int("max_connections", cfg.Server.MaxConnections))

		cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		if err != nil {
			return fmt.Errorf("failed to load TLS certificate: %w", err)
		}

		httpsListener, err := listen(httpsAddr, cfg.Server.MaxConnections)
		if err != nil {
			return fmt.Errorf("failed to create HTTPS listener: %w", err)
		}

		tlsListener := tls.NewListener(httpsListener, &tls.Config{
			MinVersion:       tls.VersionTLS13,
			Certificates:     []tls.Certificate{cert},
			CurvePreferences: []tls.CurveID{tls.X25519},
		})

		httpsServer = newServer(e)
		go func() {
			if err := httpsServer.Serve(tlsListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("https server error", slog.String("error", err.Error()))
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down servers")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	if httpsServer != nil {
		if err := httpsServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("https server shutdown failed: %w", err)
		}
	}

	return nil
}

func listen(addr string, maxConnections int) (net.Listener, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	if maxConnections > 0 {
		l = netutil.LimitListener(l, maxConnections)
	}
	return l, nil
}

func newServer(h http.Handler) *http.Server {
	return &http.Server{
		Handler:        h,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}
}

// linkStore is the configured backend plus what main needs to shut it down.
type linkStore struct {
	registry.Store
	pool  *pgxpool.Pool
	close func()
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*linkStore, error) {
	switch cfg.Store.Driver {
	case config.StoreSQLite:
		s, err := sqlite.Open(ctx, cfg.Store.SQLiteDSN)
		if err != nil {
			return nil, err
		}
		return &linkStore{Store: s, close: func() { _ = s.Close() }}, nil

	case config.StorePostgres:
		if err := postgres.Migrate(cfg.Database.URL()); err != nil {
			return nil, err
		}
		s, err := postgres.New(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		return &linkStore{Store: s, pool: s.Pool(), close: s.Close}, nil

	case config.StoreRedis:
		s, err := redis.New(ctx, &cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &linkStore{Store: s, close: func() { _ = s.Close() }}, nil

	default:
		logger.Info("using file store", slog.String("path", cfg.Store.FilePath))
		return &linkStore{Store: file.New(cfg.Store.FilePath), close: func() {}}, nil
	}
}
