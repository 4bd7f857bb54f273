package compatibility

import (
	"context"
	"log/slog"
	"strings"

	"github.com/yanqian/daily-secrets/internal/domain/zodiac"
	apperrors "github.com/yanqian/daily-secrets/pkg/errors"
)

// Config holds runtime knobs for the compatibility service.
type Config struct {
	TrendingLimit int
}

// Request names the two signs to compare.
type Request struct {
	SignA string `json:"signA" validate:"required,max=32"`
	SignB string `json:"signB" validate:"required,max=32"`
}

// TrendingPair is a frequently requested pairing.
type TrendingPair struct {
	Pair  string `json:"pair"`
	Count int64  `json:"count"`
}

// PairStats counts how often pairs are requested.
type PairStats interface {
	IncrementPair(ctx context.Context, pair string) error
	TopPairs(ctx context.Context, limit int) ([]TrendingPair, error)
}

// Service exposes compatibility scoring.
type Service interface {
	Score(ctx context.Context, req Request) (Result, error)
	Trending(ctx context.Context) ([]TrendingPair, error)
}

type service struct {
	cfg    Config
	scorer *Scorer
	stats  PairStats
	logger *slog.Logger
}

// NewService wires up the compatibility domain.
func NewService(cfg Config, scorer *Scorer, stats PairStats, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		scorer: scorer,
		stats:  stats,
		logger: logger.With("component", "compatibility.service"),
	}
}

func (s *service) Score(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.SignA) == "" || strings.TrimSpace(req.SignB) == "" {
		return Result{}, apperrors.Wrap("invalid_input", "please select both signs", nil)
	}
	for _, name := range []string{req.SignA, req.SignB} {
		if _, ok := zodiac.Lookup(name); !ok {
			return Result{}, apperrors.Wrap("invalid_input", "unknown zodiac sign "+strings.TrimSpace(name), nil)
		}
	}

	res := s.scorer.Score(req.SignA, req.SignB)

	if s.stats != nil {
		if err := s.stats.IncrementPair(ctx, PairKey(req.SignA, req.SignB)); err != nil {
			s.logger.Warn("compatibility trending increment failed", "error", err)
		}
	}
	return res, nil
}

func (s *service) Trending(ctx context.Context) ([]TrendingPair, error) {
	if s.stats == nil {
		return nil, nil
	}
	pairs, err := s.stats.TopPairs(ctx, s.cfg.TrendingLimit)
	if err != nil {
		return nil, apperrors.Wrap("stats_error", "failed to load trending pairs", err)
	}
	return pairs, nil
}
