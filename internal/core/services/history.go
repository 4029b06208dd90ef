package services

import (
	"context"

	"github.com/custodia-labs/haste-cli/internal/core/domain"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driven"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService exposes recorded locations. A nil history behaves as an
// empty one (history.enabled = false).
type HistoryService struct {
	history driven.History
}

// NewHistoryService creates a new history service.
func NewHistoryService(history driven.History) *HistoryService {
	return &HistoryService{history: history}
}

// List returns up to limit entries, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.List(ctx, limit)
}

// Clear removes all entries.
func (s *HistoryService) Clear(ctx context.Context) error {
	if s.history == nil {
		return nil
	}
	return s.history.Clear(ctx)
}
