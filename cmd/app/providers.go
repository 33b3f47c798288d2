package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/starbook-app/starbook/internal/domain/auspice"
	"github.com/starbook-app/starbook/internal/infra/config"
	"github.com/starbook-app/starbook/internal/infra/genqueue"
	"github.com/starbook-app/starbook/internal/infra/monthcache"
	"github.com/starbook-app/starbook/internal/infra/monthobj"
	"github.com/starbook-app/starbook/internal/infra/monthrepo"
)

func provideAuspiceConfig(cfg *config.Config) auspice.Config {
	return auspice.Config{
		Workers:  cfg.Generator.Workers,
		CacheTTL: cfg.Generator.CacheTTL,
	}
}

func provideMonthRepository(cfg *config.Config, logger *slog.Logger) auspice.MonthRepository {
	fallback := monthrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.Storage.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.Storage.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Storage.Postgres.MaxConns
	}
	if cfg.Storage.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Storage.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("postgres month repository enabled")
	return monthrepo.NewPostgresRepository(pool)
}

func provideMonthStore(cfg *config.Config, logger *slog.Logger) auspice.Store {
	if cfg.Storage.Valkey.Enabled {
		client, err := newValkeyClient(cfg)
		if err != nil {
			logger.Error("valkey unavailable, falling back to memory store", "error", err)
			return monthcache.NewMemoryStore()
		}
		logger.Info("valkey month cache enabled", "addr", cfg.Storage.Valkey.Addr)
		return monthcache.NewValkeyStore(client, "almanac")
	}
	return monthcache.NewMemoryStore()
}

func providePublisher(cfg *config.Config, logger *slog.Logger) (auspice.Publisher, error) {
	if cfg.Storage.Object.Enabled {
		return monthobj.NewObjectPublisher(
			cfg.Storage.Object.Endpoint,
			cfg.Storage.Object.AccessKey,
			cfg.Storage.Object.SecretKey,
			cfg.Storage.Object.Bucket,
			cfg.Storage.Object.Region,
			logger,
		)
	}
	logger.Info("object publishing disabled, writing months to local directory", "dir", cfg.Storage.OutputDir)
	return monthobj.NewFilesystemPublisher(cfg.Storage.OutputDir), nil
}

func provideGenerationQueue(cfg *config.Config, svc auspice.Service, logger *slog.Logger) genqueue.Queue {
	queueLogger := logger.With("component", "genqueue")
	handler := func(ctx context.Context, job genqueue.Job) {
		start := time.Now()
		month, err := svc.RefreshMonth(ctx, job.Year, time.Month(job.Month))
		if err != nil {
			queueLogger.Error("generation job failed", "runId", job.RunID, "year", job.Year, "month", job.Month, "error", err)
			return
		}
		queueLogger.Info("generation job finished", "runId", job.RunID, "year", job.Year, "month", job.Month, "days", len(month.Days), "elapsed_ms", time.Since(start).Milliseconds())
	}

	if cfg.Storage.Valkey.Enabled {
		client, err := newValkeyClient(cfg)
		if err != nil {
			queueLogger.Error("valkey unavailable, using in-process queue", "error", err)
		} else {
			q := genqueue.NewValkeyQueue(client, cfg.Generator.QueueKey, queueLogger)
			q.SetHandler(handler)
			return q
		}
	}
	return genqueue.NewImmediateQueue(handler)
}

func newValkeyClient(cfg *config.Config) (valkey.Client, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Storage.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Storage.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Storage.Valkey.Addr}}
	}
	if err != nil {
		return nil, err
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
