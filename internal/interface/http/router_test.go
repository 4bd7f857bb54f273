package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/daily-secrets/internal/domain/compatibility"
	"github.com/yanqian/daily-secrets/internal/domain/dreams"
	"github.com/yanqian/daily-secrets/internal/domain/journal"
	"github.com/yanqian/daily-secrets/internal/domain/numerology"
	"github.com/yanqian/daily-secrets/internal/domain/zodiac"
	"github.com/yanqian/daily-secrets/internal/infra/config"
	"github.com/yanqian/daily-secrets/internal/infra/journalarchive"
	"github.com/yanqian/daily-secrets/internal/infra/journalrepo"
	"github.com/yanqian/daily-secrets/internal/infra/pairstats"
	"github.com/yanqian/daily-secrets/pkg/metrics"
)

type routerOptions struct {
	archive journal.ObjectStorage
	limit   config.RateLimitConfig
}

func TestRouter_Health(t *testing.T) {
	rec := performRequest(t, newRouterUnderTest(t, routerOptions{}), http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_LifePath(t *testing.T) {
	rec := performRequest(t, newRouterUnderTest(t, routerOptions{}), http.MethodPost, "/api/v1/numerology/life-path", `{"birthDate":"1990-03-25"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got numerology.NumberResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 11, got.Number)
	require.True(t, got.IsMaster)
}

func TestRouter_NameNumbers(t *testing.T) {
	rec := performRequest(t, newRouterUnderTest(t, routerOptions{}), http.MethodPost, "/api/v1/numerology/name", `{"fullName":"John Smith"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got numerology.NameResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 8, got.NameNumbers.Expression)
	require.Equal(t, 6, got.NameNumbers.SoulUrge)
	require.Equal(t, 11, got.NameNumbers.Personality)
	require.Equal(t, "Natural ambition abilities from your Expression Number", got.Analysis.Strengths[0])
	require.Equal(t, "Balancing your earth expression energy", got.Analysis.Challenges[0])
}

func TestRouter_ValidationError(t *testing.T) {
	rec := performRequest(t, newRouterUnderTest(t, routerOptions{}), http.MethodPost, "/api/v1/numerology/profile", `{"birthDate":"1990-03-25"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "invalid_request", body["error"]["code"])
	require.Contains(t, body["error"]["message"], "fullName is required")
}

func TestRouter_InvalidJSON(t *testing.T) {
	rec := performRequest(t, newRouterUnderTest(t, routerOptions{}), http.MethodPost, "/api/v1/compatibility", `{"signA":1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid_request", decodeErrorBody(t, rec.Body.Bytes())["error"]["code"])
}

func TestRouter_Meaning(t *testing.T) {
	router := newRouterUnderTest(t, routerOptions{})

	rec := performRequest(t, router, http.MethodGet, "/api/v1/numerology/meanings/22", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got numerology.Meaning
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 22, got.Number)
	require.Equal(t, "The Master Builder", got.MasterTitle)

	rec = performRequest(t, router, http.MethodGet, "/api/v1/numerology/meanings/12", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "not_found", decodeErrorBody(t, rec.Body.Bytes())["error"]["code"])

	rec = performRequest(t, router, http.MethodGet, "/api/v1/numerology/meanings/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Zodiac(t *testing.T) {
	router := newRouterUnderTest(t, routerOptions{})

	rec := performRequest(t, router, http.MethodPost, "/api/v1/zodiac/resolve", `{"month":3,"day":21}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var sign zodiac.Sign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sign))
	require.Equal(t, "Aries", sign.Sign)

	rec = performRequest(t, router, http.MethodPost, "/api/v1/zodiac/resolve", `{"month":2,"day":30}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid_input", decodeErrorBody(t, rec.Body.Bytes())["error"]["code"])

	rec = performRequest(t, router, http.MethodGet, "/api/v1/zodiac/signs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Signs []zodiac.Sign `json:"signs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Signs, 12)
}

func TestRouter_CompatibilityAndTrending(t *testing.T) {
	router := newRouterUnderTest(t, routerOptions{})

	rec := performRequest(t, router, http.MethodPost, "/api/v1/compatibility", `{"signA":"leo","signB":"Aries"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var res compatibility.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, 95, res.Score)
	require.False(t, res.Generated)

	rec = performRequest(t, router, http.MethodPost, "/api/v1/compatibility", `{"signA":"Aries","signB":"Aquarius"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.True(t, res.Generated)
	require.GreaterOrEqual(t, res.Score, 60)
	require.LessOrEqual(t, res.Score, 100)

	rec = performRequest(t, router, http.MethodGet, "/api/v1/compatibility/trending", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var trending struct {
		Pairs []compatibility.TrendingPair `json:"pairs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trending))
	require.Len(t, trending.Pairs, 2)
}

func TestRouter_DreamDemo(t *testing.T) {
	rec := performRequest(t, newRouterUnderTest(t, routerOptions{}), http.MethodPost, "/api/v1/dreams/analyze", `{"demo":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Symbols []struct {
			Symbol       string `json:"symbol"`
			Significance string `json:"significance"`
		} `json:"symbols"`
		MainTheme      string   `json:"mainTheme"`
		LucidDreamTips []string `json:"lucidDreamTips"`
		Demo           bool     `json:"demo"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.Demo)
	require.Len(t, got.Symbols, 3)
	require.Equal(t, "High", got.Symbols[0].Significance)
	require.Equal(t, "Very High", got.Symbols[1].Significance)
	require.Equal(t, "Medium", got.Symbols[2].Significance)
	require.Equal(t, "Transformation and Growth", got.MainTheme)
	require.Len(t, got.LucidDreamTips, 3)
}

func TestRouter_JournalLifecycle(t *testing.T) {
	archive := journalarchive.NewMemoryStorage()
	router := newRouterUnderTest(t, routerOptions{archive: archive})

	rec := performRequest(t, router, http.MethodPost, "/api/v1/journal",
		`{"owner":"ana","kind":"zodiac","title":"Aries","summary":"bold","payload":{"sign":"Aries"}}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var entry journal.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))

	rec = performRequest(t, router, http.MethodGet, "/api/v1/journal/"+entry.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = performRequest(t, router, http.MethodGet, "/api/v1/journal?owner=ana&limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Entries []journal.Entry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Entries, 1)

	rec = performRequest(t, router, http.MethodPost, "/api/v1/journal/export", `{"owner":"ana"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var export journal.ExportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &export))
	data, mime, ok := archive.Object(export.Key)
	require.True(t, ok)
	require.Equal(t, "application/json", mime)
	require.Contains(t, string(data), `"Aries"`)

	rec = performRequest(t, router, http.MethodDelete, "/api/v1/journal/"+entry.ID.String(), "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = performRequest(t, router, http.MethodGet, "/api/v1/journal/"+entry.ID.String(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = performRequest(t, router, http.MethodGet, "/api/v1/journal/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_JournalRejectsUnknownKind(t *testing.T) {
	rec := performRequest(t, newRouterUnderTest(t, routerOptions{}), http.MethodPost, "/api/v1/journal",
		`{"owner":"ana","kind":"tarot","title":"x"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decodeErrorBody(t, rec.Body.Bytes())["error"]["message"], "kind must be one of")
}

func TestRouter_ExportDisabled(t *testing.T) {
	rec := performRequest(t, newRouterUnderTest(t, routerOptions{}), http.MethodPost, "/api/v1/journal/export", `{"owner":"ana"}`)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "archive_disabled", decodeErrorBody(t, rec.Body.Bytes())["error"]["code"])
}

func TestRouter_RateLimit(t *testing.T) {
	router := newRouterUnderTest(t, routerOptions{limit: config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1, Burst: 1}})

	rec := performRequest(t, router, http.MethodGet, "/api/v1/zodiac/signs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = performRequest(t, router, http.MethodGet, "/api/v1/zodiac/signs", "")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "rate_limit_exceeded", decodeErrorBody(t, rec.Body.Bytes())["error"]["code"])

	rec = performRequest(t, router, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newRouterUnderTest(t, routerOptions{})
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/compatibility", nil)
	req.Header.Set("Origin", "https://app.example")
	rec := httptest.NewRecorder()
	router.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	router := newRouterUnderTest(t, routerOptions{})
	performRequest(t, router, http.MethodPost, "/api/v1/compatibility", `{"signA":"Aries","signB":"Leo"}`)

	rec := performRequest(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.True(t, strings.Contains(body, `daily_secrets_compatibility_scores_total{source="table"} 1`), body)
	require.Contains(t, body, `route="/api/v1/compatibility"`)
}

func performRequest(t *testing.T, server *http.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, opts routerOptions) *http.Server {
	t.Helper()
	logger := newTestLogger()
	reg := prometheus.NewRegistry()
	m := metrics.MustNewMetrics(reg)

	handler := NewHandler(
		numerology.NewService(numerology.Config{ProfileCacheSize: 16}, logger),
		zodiac.NewService(logger),
		compatibility.NewService(compatibility.Config{TrendingLimit: 5}, compatibility.NewScorer(nil), pairstats.NewMemoryStore(), logger),
		dreams.NewService(logger),
		journal.NewService(journal.Config{ListLimit: 20}, journalrepo.NewMemoryRepository(), opts.archive, logger),
		m,
		logger,
	)
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:        ":0",
			ReadTimeout:    time.Second,
			WriteTimeout:   time.Second,
			RateLimit:      opts.limit,
			AllowedOrigins: []string{"https://app.example"},
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	return NewRouter(cfg, handler, m, reg, logger)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
