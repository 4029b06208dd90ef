package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/haste-cli/internal/core/domain"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// keyLength matches the key length of the paste server.
const keyLength = 10

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// It stands in for the paste server in tests and offline mode.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]string
	newKey    func() string
	createErr error
	gets      int
	creates   int
}

// DocumentStoreOption configures a DocumentStore.
type DocumentStoreOption func(*DocumentStore)

// WithKeyGenerator overrides random key generation.
func WithKeyGenerator(fn func() string) DocumentStoreOption {
	return func(s *DocumentStore) {
		s.newKey = fn
	}
}

// WithDocuments seeds the store.
func WithDocuments(docs map[string]string) DocumentStoreOption {
	return func(s *DocumentStore) {
		for k, v := range docs {
			s.documents[k] = v
		}
	}
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore(opts ...DocumentStoreOption) *DocumentStore {
	s := &DocumentStore{
		documents: make(map[string]string),
		newKey:    randomKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the content stored under key.
func (s *DocumentStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++

	content, ok := s.documents[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return content, nil
}

// Create stores content under a fresh key.
func (s *DocumentStore) Create(_ context.Context, content string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creates++

	if s.createErr != nil {
		return "", s.createErr
	}

	key := s.newKey()
	s.documents[key] = content
	return key, nil
}

// Raw returns the content stored under key.
func (s *DocumentStore) Raw(ctx context.Context, key string) (string, error) {
	return s.Get(ctx, key)
}

// FailCreates makes every subsequent Create return err. nil restores
// normal behaviour.
func (s *DocumentStore) FailCreates(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createErr = err
}

// Requests returns how many Get and Create calls the store has served.
func (s *DocumentStore) Requests() (gets, creates int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gets, s.creates
}

// Len returns the number of stored documents.
func (s *DocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}

func randomKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:keyLength]
}
