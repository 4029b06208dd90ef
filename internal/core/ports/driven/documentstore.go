package driven

import (
	"context"
)

// DocumentStore is the remote key-value store holding pastes.
// Implementations are opaque: the core only loads by key and creates.
type DocumentStore interface {
	// Get returns the content stored under key.
	// Any failure (missing key, transport error) is reported as an error
	// wrapping domain.ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Create stores content and returns the key assigned by the store.
	// A store-side refusal is reported as *domain.SaveError.
	Create(ctx context.Context, content string) (string, error)

	// Raw returns the plain content served at /raw/{key}.
	Raw(ctx context.Context, key string) (string, error)
}
