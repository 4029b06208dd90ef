package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/haste-cli/internal/core/domain"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driven"
)

// historyStore implements driven.History.
type historyStore struct {
	store *Store
}

var _ driven.History = (*historyStore)(nil)

// Push records a new location. A zero CreatedAt is stamped with the
// store's clock.
func (h *historyStore) Push(ctx context.Context, entry domain.HistoryEntry) error {
	if entry.Path == "" {
		return domain.ErrInvalidInput
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = h.store.clock.Now()
	}

	_, err := h.store.db.ExecContext(ctx, `
		INSERT INTO history (path, title, doc_key, event, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, entry.Path, entry.Title, nullString(entry.Key), entry.Event,
		entry.CreatedAt.UTC().Format(time.RFC3339Nano))

	if err != nil {
		return fmt.Errorf("saving history entry: %w", err)
	}
	return nil
}

// Current returns the most recent entry.
func (h *historyStore) Current(ctx context.Context) (*domain.HistoryEntry, error) {
	row := h.store.db.QueryRowContext(ctx, `
		SELECT id, path, title, doc_key, event, created_at
		FROM history
		ORDER BY id DESC
		LIMIT 1
	`)
	return scanHistoryEntry(row)
}

// List returns up to limit entries, newest first.
func (h *historyStore) List(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := h.store.db.QueryContext(ctx, `
		SELECT id, path, title, doc_key, event, created_at
		FROM history
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry //nolint:prealloc // size unknown from query
	for rows.Next() {
		entry, err := scanHistoryEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}

	return entries, nil
}

// Clear removes all entries.
func (h *historyStore) Clear(ctx context.Context) error {
	if _, err := h.store.db.ExecContext(ctx, "DELETE FROM history"); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanHistoryEntry(row rowScanner) (*domain.HistoryEntry, error) {
	var entry domain.HistoryEntry
	var key sql.NullString
	var createdAt string

	if err := row.Scan(&entry.ID, &entry.Path, &entry.Title, &key, &entry.Event, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning history entry: %w", err)
	}

	entry.Key = key.String
	if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		entry.CreatedAt = t
	}

	return &entry, nil
}

// nullString returns nil for empty strings, otherwise the string.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
