package numerology

import (
	"context"
	"log/slog"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	apperrors "github.com/yanqian/daily-secrets/pkg/errors"
	"github.com/yanqian/daily-secrets/pkg/util"
)

// Service exposes numerology readings to transports.
type Service interface {
	Profile(ctx context.Context, req ProfileRequest) (ProfileResponse, error)
	LifePath(ctx context.Context, req LifePathRequest) (NumberResponse, error)
	PersonalYear(ctx context.Context, req PersonalYearRequest) (PersonalYearResponse, error)
	Name(ctx context.Context, req NameRequest) (NameResponse, error)
	Meaning(ctx context.Context, number int) (Meaning, error)
}

type service struct {
	cfg    Config
	logger *slog.Logger
	names  *lru.Cache[string, NameNumbers]
	now    func() time.Time
}

// NewService wires up the numerology domain.
func NewService(cfg Config, logger *slog.Logger) Service {
	svc := &service{
		cfg:    cfg,
		logger: logger.With("component", "numerology.service"),
		now:    util.NowUTC,
	}
	if cfg.ProfileCacheSize > 0 {
		cache, err := lru.New[string, NameNumbers](cfg.ProfileCacheSize)
		if err != nil {
			svc.logger.Warn("name cache disabled", "error", err)
		} else {
			svc.names = cache
		}
	}
	return svc
}

func (s *service) Profile(_ context.Context, req ProfileRequest) (ProfileResponse, error) {
	name := strings.TrimSpace(req.FullName)
	date := strings.TrimSpace(req.BirthDate)
	if name == "" && date == "" {
		return ProfileResponse{}, apperrors.Wrap("invalid_input", "fullName or birthDate is required", nil)
	}
	if date != "" && textDigitSum(date) == 0 {
		return ProfileResponse{}, apperrors.Wrap("invalid_input", "birthDate must contain digits", nil)
	}
	if name != "" && NormalizeName(name) == "" {
		return ProfileResponse{}, apperrors.Wrap("invalid_input", "fullName must contain letters", nil)
	}
	year, err := s.resolveYear(req.Year)
	if err != nil {
		return ProfileResponse{}, err
	}

	profile := BuildProfile("", date, year)
	if name != "" {
		nums := s.nameNumbers(name)
		profile.FullName = name
		profile.ExpressionNumber = nums.Expression
		profile.SoulUrgeNumber = nums.SoulUrge
		profile.PersonalityNumber = nums.Personality
		if profile.LifePathNumber > 0 {
			profile.MaturityNumber = Maturity(profile.LifePathNumber, profile.ExpressionNumber)
		}
	}

	return ProfileResponse{
		Profile:  profile,
		Meanings: meaningsFor(profile),
		Analysis: Analyze(profile),
	}, nil
}

func (s *service) LifePath(_ context.Context, req LifePathRequest) (NumberResponse, error) {
	date := strings.TrimSpace(req.BirthDate)
	if textDigitSum(date) == 0 {
		return NumberResponse{}, apperrors.Wrap("invalid_input", "birthDate must contain digits", nil)
	}
	n := LifePath(date)
	return NumberResponse{Number: n, IsMaster: IsMaster(n), Meaning: MeaningFor(n)}, nil
}

func (s *service) PersonalYear(_ context.Context, req PersonalYearRequest) (PersonalYearResponse, error) {
	if _, _, ok := ParseMonthDay(req.BirthDate); !ok {
		return PersonalYearResponse{}, apperrors.Wrap("invalid_input", "birthDate must be formatted as YYYY-MM-DD or MM/DD/YYYY", nil)
	}
	year, err := s.resolveYear(req.Year)
	if err != nil {
		return PersonalYearResponse{}, err
	}
	n := PersonalYear(req.BirthDate, year)
	return PersonalYearResponse{Year: year, Number: n, Meaning: MeaningFor(n)}, nil
}

func (s *service) Name(_ context.Context, req NameRequest) (NameResponse, error) {
	name := strings.TrimSpace(req.FullName)
	if NormalizeName(name) == "" {
		return NameResponse{}, apperrors.Wrap("invalid_input", "fullName must contain letters", nil)
	}
	nums := s.nameNumbers(name)
	return NameResponse{
		NameNumbers: nums,
		FullName:    name,
		Expression:  MeaningFor(nums.Expression),
		SoulUrge:    MeaningFor(nums.SoulUrge),
		Personality: MeaningFor(nums.Personality),
		Analysis:    AnalyzeName(name, nums),
	}, nil
}

func (s *service) Meaning(_ context.Context, number int) (Meaning, error) {
	if (number < 1 || number > 9) && !IsMaster(number) {
		return Meaning{}, apperrors.Wrap("not_found", "no meaning for number", nil)
	}
	return MeaningFor(number), nil
}

func (s *service) nameNumbers(name string) NameNumbers {
	if s.names == nil {
		return Name(name)
	}
	key := NormalizeName(name)
	if cached, ok := s.names.Get(key); ok {
		return cached
	}
	nums := Name(name)
	s.names.Add(key, nums)
	return nums
}

func (s *service) resolveYear(year int) (int, error) {
	if year == 0 {
		return s.now().Year(), nil
	}
	if year < 1 || year > 9999 {
		return 0, apperrors.Wrap("invalid_input", "year must be between 1 and 9999", nil)
	}
	return year, nil
}

func meaningsFor(p Profile) ProfileMeanings {
	var out ProfileMeanings
	ref := func(n int) *Meaning {
		if n <= 0 {
			return nil
		}
		m := MeaningFor(n)
		return &m
	}
	out.LifePath = ref(p.LifePathNumber)
	out.PersonalYear = ref(p.PersonalYearNumber)
	out.Expression = ref(p.ExpressionNumber)
	out.SoulUrge = ref(p.SoulUrgeNumber)
	out.Personality = ref(p.PersonalityNumber)
	return out
}
