package memory

import (
	"context"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/custodia-labs/haste-cli/internal/core/domain"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driven"
)

// Ensure History implements the interface.
var _ driven.History = (*History)(nil)

// History is an in-process location stack.
type History struct {
	mu      sync.RWMutex
	clock   clockwork.Clock
	entries []domain.HistoryEntry
	nextID  int64
}

// NewHistory creates an empty history stamped by clock.
// A nil clock uses the real clock.
func NewHistory(clock clockwork.Clock) *History {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &History{clock: clock, nextID: 1}
}

// Push records a new location.
func (h *History) Push(_ context.Context, entry domain.HistoryEntry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry.ID = h.nextID
	h.nextID++
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = h.clock.Now()
	}
	h.entries = append(h.entries, entry)
	return nil
}

// Current returns the most recent entry.
func (h *History) Current(_ context.Context) (*domain.HistoryEntry, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.entries) == 0 {
		return nil, domain.ErrNotFound
	}
	entry := h.entries[len(h.entries)-1]
	return &entry, nil
}

// List returns up to limit entries, newest first.
func (h *History) List(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := len(h.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]domain.HistoryEntry, 0, n)
	for i := len(h.entries) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, h.entries[i])
	}
	return result, nil
}

// Clear removes all entries.
func (h *History) Clear(_ context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
	return nil
}
