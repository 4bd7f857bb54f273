package zodiac

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/yanqian/daily-secrets/pkg/errors"
)

// Request resolves either a birth date string or an explicit month/day.
type Request struct {
	BirthDate string `json:"birthDate" validate:"max=32"`
	Month     int    `json:"month" validate:"min=0,max=12"`
	Day       int    `json:"day" validate:"min=0,max=31"`
}

// Service exposes the zodiac reference data and resolver.
type Service interface {
	Resolve(ctx context.Context, req Request) (Sign, error)
	Signs(ctx context.Context) []Sign
}

type service struct {
	logger *slog.Logger
}

// NewService constructs the zodiac service.
func NewService(logger *slog.Logger) Service {
	return &service{logger: logger.With("component", "zodiac.service")}
}

func (s *service) Resolve(_ context.Context, req Request) (Sign, error) {
	var name string
	switch {
	case strings.TrimSpace(req.BirthDate) != "":
		name = ResolveDate(req.BirthDate)
	case req.Month != 0 || req.Day != 0:
		name = Resolve(req.Month, req.Day)
	default:
		return Sign{}, apperrors.Wrap("invalid_input", "birthDate or month/day is required", nil)
	}
	if name == "" {
		return Sign{}, apperrors.Wrap("invalid_input", "date does not match a calendar day", nil)
	}
	sign, _ := Lookup(name)
	return sign, nil
}

func (s *service) Signs(context.Context) []Sign {
	return Signs()
}
