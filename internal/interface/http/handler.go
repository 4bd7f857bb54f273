package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yanqian/daily-secrets/internal/domain/compatibility"
	"github.com/yanqian/daily-secrets/internal/domain/dreams"
	"github.com/yanqian/daily-secrets/internal/domain/journal"
	"github.com/yanqian/daily-secrets/internal/domain/numerology"
	"github.com/yanqian/daily-secrets/internal/domain/zodiac"
	"github.com/yanqian/daily-secrets/pkg/metrics"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	numerologySvc numerology.Service
	zodiacSvc     zodiac.Service
	compatSvc     compatibility.Service
	dreamSvc      dreams.Service
	journalSvc    journal.Service
	metrics       *metrics.Metrics
	validate      *validator.Validate
	logger        *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(
	numerologySvc numerology.Service,
	zodiacSvc zodiac.Service,
	compatSvc compatibility.Service,
	dreamSvc dreams.Service,
	journalSvc journal.Service,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		numerologySvc: numerologySvc,
		zodiacSvc:     zodiacSvc,
		compatSvc:     compatSvc,
		dreamSvc:      dreamSvc,
		journalSvc:    journalSvc,
		metrics:       m,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		logger:        logger.With("component", "http.handler"),
	}
}

// bind decodes and validates a JSON body, aborting the request on failure.
func (h *Handler) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWithError(c, invalidRequest(err))
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		abortWithError(c, invalidRequest(err))
		return false
	}
	return true
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NumerologyProfile returns the combined name and birth date reading.
func (h *Handler) NumerologyProfile(c *gin.Context) {
	var req numerology.ProfileRequest
	if !h.bind(c, &req) {
		return
	}
	resp, err := h.numerologySvc.Profile(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromServiceError(err))
		return
	}
	h.metrics.IncReading("numerology")
	c.JSON(http.StatusOK, resp)
}

// LifePath returns the life path number for a birth date.
func (h *Handler) LifePath(c *gin.Context) {
	var req numerology.LifePathRequest
	if !h.bind(c, &req) {
		return
	}
	resp, err := h.numerologySvc.LifePath(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromServiceError(err))
		return
	}
	h.metrics.IncReading("numerology")
	c.JSON(http.StatusOK, resp)
}

// PersonalYear returns the personal year number.
func (h *Handler) PersonalYear(c *gin.Context) {
	var req numerology.PersonalYearRequest
	if !h.bind(c, &req) {
		return
	}
	resp, err := h.numerologySvc.PersonalYear(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromServiceError(err))
		return
	}
	h.metrics.IncReading("numerology")
	c.JSON(http.StatusOK, resp)
}

// NameNumbers returns expression, soul urge and personality numbers.
func (h *Handler) NameNumbers(c *gin.Context) {
	var req numerology.NameRequest
	if !h.bind(c, &req) {
		return
	}
	resp, err := h.numerologySvc.Name(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromServiceError(err))
		return
	}
	h.metrics.IncReading("numerology")
	c.JSON(http.StatusOK, resp)
}

// Meaning returns the reference entry for a number.
func (h *Handler) Meaning(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "number must be an integer", err))
		return
	}
	meaning, err := h.numerologySvc.Meaning(c.Request.Context(), number)
	if err != nil {
		abortWithError(c, fromServiceError(err))
		return
	}
	c.JSON(http.StatusOK, meaning)
}

// ZodiacSigns lists the twelve signs.
func (h *Handler) ZodiacSigns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"signs": h.zodiacSvc.Signs(c.Request.Context())})
}

// ResolveZodiac maps a birth date to its sign.
func (h *Handler) ResolveZodiac(c *gin.Context) {
	var req zodiac.Request
	if !h.bind(c, &req) {
		return
	}
	sign, err := h.zodiacSvc.Resolve(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromServiceError(err))
		return
	}
	h.metrics.IncReading("zodiac")
	c.JSON(http.StatusOK, sign)
}

// Compatibility scores a pair of signs.
func (h *Handler) Compatibility(c *gin.Context) {
	var req compatibility.Request
	if !h.bind(c, &req) {
		return
	}
	res, err := h.compatSvc.Score(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromServiceError(err))
		return
	}
	h.metrics.IncReading("compatibility")
	h.metrics.ObserveCompatibility(res.Generated)
	c.JSON(http.StatusOK, res)
}

// TrendingPairs lists the most requested sign pairs.
func (h *Handler) TrendingPairs(c *gin.Context) {
	items, err := h.compatSvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, fromServiceError(err))
		return
	}
	if items == nil {
		items = []compatibility.TrendingPair{}
	}
	c.JSON(http.StatusOK, gin.H{"pairs": items})
}

// AnalyzeDream ranks the symbols in a dream.
func (h *Handler) AnalyzeDream(c *gin.Context) {
	var req dreams.Request
	if !h.bind(c, &req) {
		return
	}
	resp, err := h.dreamSvc.Analyze(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromServiceError(err))
		return
	}
	h.metrics.IncReading("dream")
	c.JSON(http.StatusOK, resp)
}
