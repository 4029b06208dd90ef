package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/haste-cli/internal/core/domain"
)

func TestServer_handleLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("returns paste content", func(t *testing.T) {
		server := newTestPorts(t, map[string]string{"xyz": "print(1)"}).server(t)

		_, out, err := server.handleLoad(ctx, nil, LoadInput{Key: "xyz.py"})

		require.NoError(t, err)
		assert.Equal(t, "xyz", out.Key)
		assert.Equal(t, "/xyz.py", out.Path)
		assert.Equal(t, "https://paste.example/xyz.py", out.URL)
		assert.Equal(t, "https://paste.example/raw/xyz", out.RawURL)
		assert.Equal(t, "python", out.ContentType)
		assert.Equal(t, "print(1)", out.Content)
	})

	t.Run("missing key is not found", func(t *testing.T) {
		server := newTestPorts(t, nil).server(t)

		_, _, err := server.handleLoad(ctx, nil, LoadInput{Key: "nope"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("empty key is invalid", func(t *testing.T) {
		server := newTestPorts(t, nil).server(t)

		_, _, err := server.handleLoad(ctx, nil, LoadInput{})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestServer_handleSave(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes content", func(t *testing.T) {
		tp := newTestPorts(t, nil)
		server := tp.server(t)

		_, out, err := server.handleSave(ctx, nil, SaveInput{Content: "print(2)"})

		require.NoError(t, err)
		assert.Equal(t, "abc123", out.Key)
		assert.Equal(t, "/abc123.py", out.Path)
		assert.Equal(t, "https://paste.example/abc123.py", out.URL)
		assert.Equal(t, 1, tp.store.Len())
	})

	t.Run("blank content is refused", func(t *testing.T) {
		tp := newTestPorts(t, nil)
		server := tp.server(t)

		_, _, err := server.handleSave(ctx, nil, SaveInput{Content: "  "})

		assert.ErrorIs(t, err, domain.ErrEmptyDocument)
		assert.Equal(t, 0, tp.store.Len())
	})

	t.Run("store rejection is returned", func(t *testing.T) {
		tp := newTestPorts(t, nil)
		tp.store.FailCreates(domain.NewSaveError("too large"))
		server := tp.server(t)

		_, _, err := server.handleSave(ctx, nil, SaveInput{Content: "x"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrSaveRejected)
		assert.Contains(t, err.Error(), "too large")
	})
}

func TestServer_handleParsePath(t *testing.T) {
	server := newTestPorts(t, nil).server(t)
	tests := []struct {
		path string
		want ParsePathOutput
	}{
		{"/abc123.py", ParsePathOutput{Key: "abc123", Extension: "py", ContentType: "python"}},
		{"abc123", ParsePathOutput{Key: "abc123"}},
		{"abc.rb.bak", ParsePathOutput{Key: "abc", Extension: "rb", ContentType: "ruby"}},
		{"abc.zig", ParsePathOutput{Key: "abc", Extension: "zig", ContentType: "zig"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, out, err := server.handleParsePath(context.Background(), nil, ParsePathInput{Path: tt.path})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	t.Run("root has no key", func(t *testing.T) {
		_, _, err := server.handleParsePath(context.Background(), nil, ParsePathInput{Path: "/"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestServer_handleHistory(t *testing.T) {
	ctx := context.Background()
	tp := newTestPorts(t, map[string]string{"xyz": "x"})
	server := tp.server(t)

	_, _, err := server.handleLoad(ctx, nil, LoadInput{Key: "xyz"})
	require.NoError(t, err)
	_, _, err = server.handleSave(ctx, nil, SaveInput{Content: "y"})
	require.NoError(t, err)

	_, out, err := server.handleHistory(ctx, nil, HistoryInput{})

	require.NoError(t, err)
	require.Equal(t, 2, out.Count)
	assert.Equal(t, "/abc123.py", out.Entries[0].Path)
	assert.Equal(t, domain.HistoryEventLock, out.Entries[0].Event)
	assert.Equal(t, "/xyz", out.Entries[1].Path)
	assert.NotEmpty(t, out.Entries[1].CreatedAt)

	_, out, err = server.handleHistory(ctx, nil, HistoryInput{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Count)
}
