package driven

import (
	"context"

	"github.com/custodia-labs/haste-cli/internal/core/domain"
)

// History records the locations a session moves through.
// It plays the role of the browser's history stack.
type History interface {
	// Push records a new location.
	Push(ctx context.Context, entry domain.HistoryEntry) error

	// Current returns the most recent entry, or domain.ErrNotFound.
	Current(ctx context.Context) (*domain.HistoryEntry, error)

	// List returns up to limit entries, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error
}
