package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/yanqian/daily-secrets/pkg/errors"
	"github.com/yanqian/daily-secrets/pkg/util"
)

const (
	defaultListLimit = 50
	maxExportEntries = 1000
	maxTitleLength   = 200
)

// Service exposes the reading journal.
type Service interface {
	Save(ctx context.Context, req SaveRequest) (Entry, error)
	Get(ctx context.Context, id uuid.UUID) (Entry, error)
	List(ctx context.Context, owner string, limit int) ([]Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Export(ctx context.Context, owner string) (ExportResult, error)
}

type service struct {
	cfg     Config
	repo    Repository
	storage ObjectStorage
	logger  *slog.Logger
	now     func() time.Time
	newID   func() uuid.UUID
}

// NewService wires the journal. storage may be nil, which disables Export.
func NewService(cfg Config, repo Repository, storage ObjectStorage, logger *slog.Logger) Service {
	if cfg.ListLimit <= 0 {
		cfg.ListLimit = defaultListLimit
	}
	return &service{
		cfg:     cfg,
		repo:    repo,
		storage: storage,
		logger:  logger.With("component", "journal.service"),
		now:     util.NowUTC,
		newID:   uuid.New,
	}
}

func (s *service) Save(ctx context.Context, req SaveRequest) (Entry, error) {
	owner := strings.TrimSpace(req.Owner)
	if owner == "" {
		return Entry{}, apperrors.Wrap("invalid_input", "owner is required", nil)
	}
	if !req.Kind.Valid() {
		return Entry{}, apperrors.Wrap("invalid_input", fmt.Sprintf("unknown journal kind %q", req.Kind), nil)
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return Entry{}, apperrors.Wrap("invalid_input", "title is required", nil)
	}
	if len(title) > maxTitleLength {
		return Entry{}, apperrors.Wrap("invalid_input", "title is too long", nil)
	}
	if len(req.Payload) > 0 && !json.Valid(req.Payload) {
		return Entry{}, apperrors.Wrap("invalid_input", "payload must be valid JSON", nil)
	}

	entry := Entry{
		ID:        s.newID(),
		Owner:     owner,
		Kind:      req.Kind,
		Title:     title,
		Summary:   strings.TrimSpace(req.Summary),
		Payload:   append(json.RawMessage(nil), req.Payload...),
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return Entry{}, apperrors.Wrap("journal_error", "failed to save entry", err)
	}
	s.logger.Info("journal entry saved", "id", entry.ID, "owner", owner, "kind", entry.Kind)
	return entry, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Entry, error) {
	entry, ok, err := s.repo.Get(ctx, id)
	if err != nil {
		return Entry{}, apperrors.Wrap("journal_error", "failed to load entry", err)
	}
	if !ok {
		return Entry{}, apperrors.Wrap("not_found", "journal entry not found", nil)
	}
	return entry, nil
}

func (s *service) List(ctx context.Context, owner string, limit int) ([]Entry, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil, apperrors.Wrap("invalid_input", "owner is required", nil)
	}
	if limit <= 0 || limit > s.cfg.ListLimit {
		limit = s.cfg.ListLimit
	}
	entries, err := s.repo.List(ctx, owner, limit)
	if err != nil {
		return nil, apperrors.Wrap("journal_error", "failed to list entries", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperrors.Wrap("journal_error", "failed to delete entry", err)
	}
	if !deleted {
		return apperrors.Wrap("not_found", "journal entry not found", nil)
	}
	s.logger.Info("journal entry deleted", "id", id)
	return nil
}

func (s *service) Export(ctx context.Context, owner string) (ExportResult, error) {
	if s.storage == nil {
		return ExportResult{}, apperrors.Wrap("archive_disabled", "journal export is not configured", nil)
	}
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return ExportResult{}, apperrors.Wrap("invalid_input", "owner is required", nil)
	}
	entries, err := s.repo.List(ctx, owner, maxExportEntries)
	if err != nil {
		return ExportResult{}, apperrors.Wrap("journal_error", "failed to list entries", err)
	}
	if entries == nil {
		entries = []Entry{}
	}

	exportedAt := s.now().UTC()
	data, err := json.Marshal(exportDocument{Owner: owner, ExportedAt: exportedAt, Entries: entries})
	if err != nil {
		return ExportResult{}, apperrors.Wrap("archive_error", "failed to encode export", err)
	}
	key := exportKey(owner, exportedAt)
	obj, err := s.storage.Put(ctx, key, data, "application/json")
	if err != nil {
		return ExportResult{}, apperrors.Wrap("archive_error", "failed to store export", err)
	}
	s.logger.Info("journal exported", "owner", owner, "key", obj.Key, "entries", len(entries))
	return ExportResult{
		Key:        obj.Key,
		Entries:    len(entries),
		Size:       obj.Size,
		ExportedAt: exportedAt,
	}, nil
}

func exportKey(owner string, at time.Time) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, owner)
	return fmt.Sprintf("journal/%s/%s.json", safe, at.Format("20060102T150405Z"))
}
