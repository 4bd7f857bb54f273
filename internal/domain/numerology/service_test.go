package numerology

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/daily-secrets/pkg/errors"
)

func newTestService(t *testing.T, cacheSize int) *service {
	t.Helper()
	svc := NewService(Config{ProfileCacheSize: cacheSize}, slog.New(slog.NewTextHandler(io.Discard, nil))).(*service)
	svc.now = func() time.Time {
		return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestServiceProfile(t *testing.T) {
	svc := newTestService(t, 16)

	resp, err := svc.Profile(context.Background(), ProfileRequest{FullName: "John Smith", BirthDate: "1990-03-25"})
	require.NoError(t, err)
	require.Equal(t, 2024, resp.Profile.TargetYear)
	require.Equal(t, 11, resp.Profile.LifePathNumber)
	require.Equal(t, 9, resp.Profile.PersonalYearNumber)
	require.Equal(t, 8, resp.Profile.ExpressionNumber)
	require.Equal(t, 1, resp.Profile.MaturityNumber)
	require.NotNil(t, resp.Meanings.LifePath)
	require.Equal(t, "The Intuitive", resp.Meanings.LifePath.MasterTitle)
	require.NotNil(t, resp.Meanings.SoulUrge)
	require.NotEmpty(t, resp.Analysis)
}

func TestServiceProfileValidation(t *testing.T) {
	svc := newTestService(t, 0)

	_, err := svc.Profile(context.Background(), ProfileRequest{})
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	_, err = svc.Profile(context.Background(), ProfileRequest{BirthDate: "someday"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	_, err = svc.Profile(context.Background(), ProfileRequest{FullName: "1234"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	_, err = svc.Profile(context.Background(), ProfileRequest{FullName: "Ann", Year: 12000})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestServiceLifePath(t *testing.T) {
	svc := newTestService(t, 0)

	resp, err := svc.LifePath(context.Background(), LifePathRequest{BirthDate: "1985-12-07"})
	require.NoError(t, err)
	require.Equal(t, 33, resp.Number)
	require.True(t, resp.IsMaster)
	require.Equal(t, "The Master Teacher", resp.Meaning.MasterTitle)

	_, err = svc.LifePath(context.Background(), LifePathRequest{BirthDate: "--"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestServicePersonalYear(t *testing.T) {
	svc := newTestService(t, 0)

	resp, err := svc.PersonalYear(context.Background(), PersonalYearRequest{BirthDate: "03/25/1990", Year: 2024})
	require.NoError(t, err)
	require.Equal(t, 9, resp.Number)
	require.Equal(t, 2024, resp.Year)

	defaulted, err := svc.PersonalYear(context.Background(), PersonalYearRequest{BirthDate: "1990-01-02"})
	require.NoError(t, err)
	require.Equal(t, 2024, defaulted.Year)
	require.Equal(t, 2, defaulted.Number)

	_, err = svc.PersonalYear(context.Background(), PersonalYearRequest{BirthDate: "1990"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestServiceNameUsesCache(t *testing.T) {
	svc := newTestService(t, 4)

	first, err := svc.Name(context.Background(), NameRequest{FullName: "John Smith"})
	require.NoError(t, err)
	require.Equal(t, 1, svc.names.Len())

	second, err := svc.Name(context.Background(), NameRequest{FullName: "JOHN  SMITH"})
	require.NoError(t, err)
	require.Equal(t, first.NameNumbers, second.NameNumbers)
	require.Equal(t, 1, svc.names.Len())
	require.Equal(t, "The Achiever", second.Expression.Title)
	require.Equal(t, "JOHN  SMITH", second.FullName)
	require.True(t, strings.HasPrefix(second.Analysis.Overview, "JOHN, your name"))
	require.Equal(t, "Natural ambition abilities from your Expression Number", first.Analysis.Strengths[0])
}

func TestServiceMeaning(t *testing.T) {
	svc := newTestService(t, 0)

	m, err := svc.Meaning(context.Background(), 22)
	require.NoError(t, err)
	require.Equal(t, "The Master Builder", m.MasterTitle)

	_, err = svc.Meaning(context.Background(), 12)
	require.True(t, apperrors.IsCode(err, "not_found"))
}
