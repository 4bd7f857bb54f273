package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yanqian/daily-secrets/internal/domain/journal"
)

type exportRequest struct {
	Owner string `json:"owner" validate:"required,max=128"`
}

// SaveJournalEntry stores a reading in the owner's journal.
func (h *Handler) SaveJournalEntry(c *gin.Context) {
	var req journal.SaveRequest
	if !h.bind(c, &req) {
		return
	}
	entry, err := h.journalSvc.Save(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromServiceError(err))
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListJournalEntries lists an owner's entries, newest first.
func (h *Handler) ListJournalEntries(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "limit must be a non-negative integer", err))
			return
		}
		limit = parsed
	}
	entries, err := h.journalSvc.List(c.Request.Context(), c.Query("owner"), limit)
	if err != nil {
		abortWithError(c, fromServiceError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// GetJournalEntry returns a single entry.
func (h *Handler) GetJournalEntry(c *gin.Context) {
	id, ok := parseEntryID(c)
	if !ok {
		return
	}
	entry, err := h.journalSvc.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, fromServiceError(err))
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteJournalEntry removes an entry.
func (h *Handler) DeleteJournalEntry(c *gin.Context) {
	id, ok := parseEntryID(c)
	if !ok {
		return
	}
	if err := h.journalSvc.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, fromServiceError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportJournal archives an owner's journal to object storage.
func (h *Handler) ExportJournal(c *gin.Context) {
	var req exportRequest
	if !h.bind(c, &req) {
		return
	}
	res, err := h.journalSvc.Export(c.Request.Context(), req.Owner)
	if err != nil {
		abortWithError(c, fromServiceError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func parseEntryID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "id must be a UUID", err))
		return uuid.Nil, false
	}
	return id, true
}
