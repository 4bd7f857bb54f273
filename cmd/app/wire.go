//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yanqian/daily-secrets/internal/bootstrap"
	"github.com/yanqian/daily-secrets/internal/domain/compatibility"
	"github.com/yanqian/daily-secrets/internal/domain/dreams"
	"github.com/yanqian/daily-secrets/internal/domain/journal"
	"github.com/yanqian/daily-secrets/internal/domain/numerology"
	"github.com/yanqian/daily-secrets/internal/domain/zodiac"
	"github.com/yanqian/daily-secrets/internal/infra/config"
	httpiface "github.com/yanqian/daily-secrets/internal/interface/http"
	"github.com/yanqian/daily-secrets/pkg/logger"
	"github.com/yanqian/daily-secrets/pkg/metrics"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideNumerologyConfig,
		provideCompatibilityConfig,
		provideJournalConfig,
		provideScorer,
		provideRegistry,
		providePairStats,
		provideJournalRepository,
		provideJournalArchive,
		wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
		wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
		metrics.MustNewMetrics,
		numerology.NewService,
		zodiac.NewService,
		compatibility.NewService,
		dreams.NewService,
		journal.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
