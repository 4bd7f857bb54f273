package journalrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/daily-secrets/internal/domain/journal"
)

// PostgresRepository implements journal.Repository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create inserts an entry row.
func (r *PostgresRepository) Create(ctx context.Context, entry journal.Entry) error {
	var payload any
	if len(entry.Payload) > 0 {
		payload = []byte(entry.Payload)
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO journal_entries (id, owner, kind, title, summary, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, entry.ID, entry.Owner, string(entry.Kind), entry.Title, entry.Summary, payload, entry.CreatedAt)
	return err
}

// Get fetches by primary key.
func (r *PostgresRepository) Get(ctx context.Context, id uuid.UUID) (journal.Entry, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner, kind, title, summary, payload, created_at
		FROM journal_entries
		WHERE id = $1
		LIMIT 1
	`, id)
	if err != nil {
		return journal.Entry{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return journal.Entry{}, false, rows.Err()
	}
	entry, err := scanEntry(rows)
	if err != nil {
		return journal.Entry{}, false, err
	}
	return entry, true, rows.Err()
}

// List returns an owner's entries, newest first.
func (r *PostgresRepository) List(ctx context.Context, owner string, limit int) ([]journal.Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner, kind, title, summary, payload, created_at
		FROM journal_entries
		WHERE owner = $1
		ORDER BY created_at DESC, id
		LIMIT $2
	`, owner, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []journal.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

// Delete removes an entry and reports whether it existed.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM journal_entries WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (journal.Entry, error) {
	var (
		entry   journal.Entry
		kind    string
		payload []byte
	)
	if err := row.Scan(&entry.ID, &entry.Owner, &kind, &entry.Title, &entry.Summary, &payload, &entry.CreatedAt); err != nil {
		return journal.Entry{}, err
	}
	entry.Kind = journal.Kind(kind)
	if len(payload) > 0 {
		entry.Payload = payload
	}
	entry.CreatedAt = entry.CreatedAt.UTC()
	return entry, nil
}

var _ journal.Repository = (*PostgresRepository)(nil)
