package dreams

import (
	"context"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/yanqian/daily-secrets/pkg/errors"
	"github.com/yanqian/daily-secrets/pkg/util"
)

// Request asks for a dream reading. Demo ignores the other fields.
type Request struct {
	Description string   `json:"description" validate:"max=5000"`
	Symbols     []string `json:"symbols" validate:"max=20,dive,max=32"`
	Demo        bool     `json:"demo"`
}

// Response wraps an analysis with request metadata.
type Response struct {
	Analysis
	Demo       bool      `json:"demo"`
	AnalyzedAt time.Time `json:"analyzedAt"`
}

// Service exposes dream symbol analysis.
type Service interface {
	Analyze(ctx context.Context, req Request) (Response, error)
}

type service struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs the dream service.
func NewService(logger *slog.Logger) Service {
	return &service{
		logger: logger.With("component", "dreams.service"),
		now:    util.NowUTC,
	}
}

func (s *service) Analyze(_ context.Context, req Request) (Response, error) {
	if req.Demo {
		return Response{Analysis: Demo(), Demo: true, AnalyzedAt: s.now().UTC()}, nil
	}
	description := strings.TrimSpace(req.Description)
	if description == "" && len(req.Symbols) == 0 {
		return Response{}, apperrors.Wrap("invalid_input", "dream description cannot be empty", nil)
	}
	keys := append(append([]string(nil), req.Symbols...), ExtractSymbols(description)...)
	return Response{
		Analysis:   newAnalysis(Rank(keys)),
		AnalyzedAt: s.now().UTC(),
	}, nil
}
