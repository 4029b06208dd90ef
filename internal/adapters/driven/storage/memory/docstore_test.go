package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/haste-cli/internal/core/domain"
)

func TestDocumentStore_CreateAndGet(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	key, err := store.Create(ctx, "hello")
	require.NoError(t, err)
	assert.Len(t, key, keyLength)

	content, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "hello", content)

	raw, err := store.Raw(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "hello", raw)

	gets, creates := store.Requests()
	assert.Equal(t, 2, gets)
	assert.Equal(t, 1, creates)
}

func TestDocumentStore_Get_NotFound(t *testing.T) {
	store := NewDocumentStore()

	_, err := store.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_Seeded(t *testing.T) {
	store := NewDocumentStore(WithDocuments(map[string]string{"abc123": "x"}))

	content, err := store.Get(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, "x", content)
	assert.Equal(t, 1, store.Len())
}

func TestDocumentStore_KeyGenerator(t *testing.T) {
	store := NewDocumentStore(WithKeyGenerator(func() string { return "abc123" }))

	key, err := store.Create(context.Background(), "x")

	require.NoError(t, err)
	assert.Equal(t, "abc123", key)
}

func TestDocumentStore_RandomKeysDiffer(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	a, err := store.Create(ctx, "a")
	require.NoError(t, err)
	b, err := store.Create(ctx, "b")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, store.Len())
}

func TestDocumentStore_FailCreates(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()
	store.FailCreates(domain.NewSaveError("document too large"))

	_, err := store.Create(ctx, "x")

	var saveErr *domain.SaveError
	require.ErrorAs(t, err, &saveErr)
	assert.Equal(t, "document too large", saveErr.Message)
	assert.Equal(t, 0, store.Len())

	store.FailCreates(nil)
	_, err = store.Create(ctx, "x")
	assert.NoError(t, err)
}

func TestDocumentStore_Concurrency(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key, err := store.Create(ctx, "content")
			if err == nil {
				_, _ = store.Get(ctx, key)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
}
