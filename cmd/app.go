package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"admanager/internal/adapter/entitystore"
	"admanager/internal/adapter/idgen"
	"admanager/internal/adapter/memory"
	"admanager/internal/adapter/mode"
	"admanager/internal/adapter/postgres"
	redisadapter "admanager/internal/adapter/redis"
	"admanager/internal/adapter/remote"
	"admanager/internal/adapter/repository"
	s3adapter "admanager/internal/adapter/s3"
	"admanager/internal/adapter/sqlite"
	"admanager/internal/adapter/usecase"
	"admanager/internal/config"
	"admanager/internal/config/configs"
	"admanager/internal/core/port"
	"admanager/internal/db"
	"admanager/internal/metrics"
)

// app holds the wired dependencies shared by the subcommands.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	console  *usecase.ConsoleUseCase
	closers  []func()
}

// newApp loads the configuration, opens the configured storage driver and
// builds the console use case. Logs go to logOut.
func newApp(ctx context.Context, logOut io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a := &app{cfg: cfg, logger: logger, registry: reg, metrics: metrics.New(reg)}

	kv, err := a.openKV(ctx)
	if err != nil {
		a.close()
		return nil, err
	}
	logger.Debug("storage opened", slog.String("driver", cfg.Storage.Driver))

	catalog := repository.NewCatalog(entitystore.New(kv, logger, a.metrics))
	var ids port.IDGenerator
	switch cfg.IDs.Scheme {
	case configs.SchemeTimestamp:
		ids = idgen.NewTimestamp()
	default:
		ids = idgen.NewCounting(catalog)
	}
	a.console = usecase.NewConsoleUseCase(
		catalog,
		mode.NewSelector(kv, logger),
		ids,
		remote.NewWarehouse(cfg.BigQuery),
		logger,
	)
	return a, nil
}

func (a *app) openKV(ctx context.Context) (port.KV, error) {
	cfg := a.cfg
	switch cfg.Storage.Driver {
	case configs.DriverMemory:
		a.logger.Warn("memory storage driver selected, records are lost on exit")
		return memory.NewKVStore(), nil
	case configs.DriverSQLite:
		s, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = s.Close() })
		return s, nil
	case configs.DriverPostgres:
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, fmt.Errorf("migration error: %w", err)
			}
			a.logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("database connection error: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		return postgres.NewKVStore(pool), nil
	case configs.DriverRedis:
		s := redisadapter.NewKVStore(redisadapter.NewClient(cfg.Redis), cfg.Redis.Prefix)
		a.closers = append(a.closers, func() { _ = s.Close() })
		if err := s.Ping(ctx); err != nil {
			return nil, fmt.Errorf("redis connection error: %w", err)
		}
		return s, nil
	case configs.DriverS3:
		return s3adapter.New(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// withApp runs fn against a freshly wired app and releases it afterwards.
// Command logs go to stderr so stdout stays parseable.
func withApp(ctx context.Context, fn func(*app) error) error {
	a, err := newApp(ctx, os.Stderr)
	if err != nil {
		return err
	}
	defer a.close()
	return fn(a)
}
