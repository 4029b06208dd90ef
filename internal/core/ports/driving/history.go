package driving

import (
	"context"

	"github.com/custodia-labs/haste-cli/internal/core/domain"
)

// HistoryService exposes the recorded locations.
type HistoryService interface {
	// List returns up to limit entries, newest first.
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error
}
