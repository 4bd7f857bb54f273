package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/daily-secrets/internal/domain/compatibility"
	"github.com/yanqian/daily-secrets/internal/domain/journal"
	"github.com/yanqian/daily-secrets/internal/domain/numerology"
	"github.com/yanqian/daily-secrets/internal/infra/config"
	"github.com/yanqian/daily-secrets/internal/infra/journalarchive"
	"github.com/yanqian/daily-secrets/internal/infra/journalrepo"
	"github.com/yanqian/daily-secrets/internal/infra/pairstats"
)

func provideNumerologyConfig(cfg *config.Config) numerology.Config {
	return numerology.Config{ProfileCacheSize: cfg.Numerology.ProfileCacheSize}
}

func provideCompatibilityConfig(cfg *config.Config) compatibility.Config {
	return compatibility.Config{TrendingLimit: cfg.Compatibility.TrendingLimit}
}

func provideJournalConfig(cfg *config.Config) journal.Config {
	return journal.Config{ListLimit: cfg.Journal.ListLimit}
}

func provideScorer() *compatibility.Scorer {
	return compatibility.NewScorer(nil)
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideJournalRepository(cfg *config.Config, logger *slog.Logger) (journal.Repository, func()) {
	fallback := journalrepo.NewMemoryRepository()
	noop := func() {}
	dsn := strings.TrimSpace(cfg.Journal.Postgres.DSN)
	if dsn == "" {
		logger.Info("journal postgres dsn not set, using memory repository")
		return fallback, noop
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback, noop
	}
	if cfg.Journal.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Journal.Postgres.MaxConns
	}
	if cfg.Journal.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Journal.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback, noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback, noop
	}
	if cfg.Journal.Postgres.Migrate {
		migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancelMigrate()
		if err := journalrepo.Migrate(migrateCtx, pool, logger); err != nil {
			logger.Error("journal migrations failed, using memory repository", "error", err)
			pool.Close()
			return fallback, noop
		}
	}
	logger.Info("journal postgres repository enabled")
	return journalrepo.NewPostgresRepository(pool), pool.Close
}

func provideJournalArchive(cfg *config.Config, logger *slog.Logger) journal.ObjectStorage {
	archive := cfg.Journal.Archive
	if !archive.Enabled {
		logger.Info("journal archive disabled, export unavailable")
		return nil
	}
	storage, err := journalarchive.NewS3Storage(journalarchive.Options{
		Endpoint:  archive.Endpoint,
		AccessKey: archive.AccessKey,
		SecretKey: archive.SecretKey,
		Bucket:    archive.Bucket,
		Region:    archive.Region,
	}, logger)
	if err != nil {
		logger.Error("failed to initialize journal archive, using memory storage", "error", err)
		return journalarchive.NewMemoryStorage()
	}
	logger.Info("journal archive enabled", "bucket", archive.Bucket)
	return storage
}

func providePairStats(cfg *config.Config, logger *slog.Logger) (compatibility.PairStats, func()) {
	noop := func() {}
	if !cfg.Compatibility.Redis.Enabled {
		return pairstats.NewMemoryStore(), noop
	}
	opt, err := buildValkeyOptions(cfg.Compatibility.Redis.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return pairstats.NewMemoryStore(), noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return pairstats.NewMemoryStore(), noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return pairstats.NewMemoryStore(), noop
	}
	logger.Info("compatibility valkey store enabled", "addr", cfg.Compatibility.Redis.Addr)
	return pairstats.NewValkeyStore(client, "compat"), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
