package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yanqian/daily-secrets/internal/infra/config"
	"github.com/yanqian/daily-secrets/pkg/metrics"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, m *metrics.Metrics, gatherer prometheus.Gatherer, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(logger),
		metricsMiddleware(m),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(logger),
	)

	router.GET("/healthz", handler.Health)
	if cfg.Metrics.Enabled && gatherer != nil {
		router.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	api := router.Group("/api/v1")
	api.Use(rateLimitMiddleware(cfg.HTTP.RateLimit, logger))
	{
		api.POST("/numerology/profile", handler.NumerologyProfile)
		api.POST("/numerology/life-path", handler.LifePath)
		api.POST("/numerology/personal-year", handler.PersonalYear)
		api.POST("/numerology/name", handler.NameNumbers)
		api.GET("/numerology/meanings/:number", handler.Meaning)

		api.GET("/zodiac/signs", handler.ZodiacSigns)
		api.POST("/zodiac/resolve", handler.ResolveZodiac)

		api.POST("/compatibility", handler.Compatibility)
		api.GET("/compatibility/trending", handler.TrendingPairs)

		api.POST("/dreams/analyze", handler.AnalyzeDream)

		api.POST("/journal", handler.SaveJournalEntry)
		api.GET("/journal", handler.ListJournalEntries)
		api.POST("/journal/export", handler.ExportJournal)
		api.GET("/journal/:id", handler.GetJournalEntry)
		api.DELETE("/journal/:id", handler.DeleteJournalEntry)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
