package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/haste-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/haste-cli/internal/adapters/driven/store/httpstore"
	"github.com/custodia-labs/haste-cli/internal/core/domain"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driven"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driving"
)

type sessionFixture struct {
	session   *Session
	store     *memory.DocumentStore
	editor    *mockEditor
	presenter *mockPresenter
	history   *memory.History
	opener    *mockOpener
}

func newSessionFixture(t *testing.T, store driven.DocumentStore, settings domain.AppSettings) *sessionFixture {
	t.Helper()

	f := &sessionFixture{
		editor:    &mockEditor{},
		presenter: &mockPresenter{},
		history:   memory.NewHistory(clockwork.NewFakeClock()),
		opener:    &mockOpener{},
	}
	if ms, ok := store.(*memory.DocumentStore); ok {
		f.store = ms
	}
	f.session = NewSession(store, settings,
		WithEditor(f.editor),
		WithPresenter(f.presenter),
		WithHistory(f.history),
		WithOpener(f.opener),
	)
	return f
}

func (f *sessionFixture) historyPaths(t *testing.T) []string {
	t.Helper()
	entries, err := f.history.List(context.Background(), 0)
	require.NoError(t, err)

	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[len(entries)-1-i] = e.Path
	}
	return paths
}

func TestNewSession(t *testing.T) {
	f := newSessionFixture(t, memory.NewDocumentStore(), domain.DefaultAppSettings())

	state := f.session.State()
	assert.False(t, state.Saved)
	assert.Empty(t, state.Key)
	assert.Equal(t, "/", state.Path)
	assert.Equal(t, "haste", state.Title)
	assert.Equal(t, domain.LightKey(), state.Enabled)

	assert.Equal(t, "haste", f.presenter.title)
	assert.Equal(t, domain.LightKey(), f.presenter.enabled)
	assert.Equal(t, 1, f.editor.focused)
	assert.Empty(t, f.historyPaths(t), "initial document must not push history")
}

func TestNewSession_DefaultEditor(t *testing.T) {
	s := NewSession(memory.NewDocumentStore(), domain.DefaultAppSettings(), WithEditor(nil))

	s.Editor().SetValue("hello")

	assert.Equal(t, "hello", s.Editor().Value())
}

func TestNewSession_HeadlessLock(t *testing.T) {
	var controller driving.SessionController = NewSession(
		memory.NewDocumentStore(fixedKey("abc123")), domain.DefaultAppSettings())

	controller.Editor().SetValue("print(1)")
	payload, err := controller.LockDocument(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "print(1)", payload.Content)
	assert.Equal(t, "print(1)", controller.Editor().Value())
}

func TestSession_EditorIsAttachedWidget(t *testing.T) {
	f := newSessionFixture(t, memory.NewDocumentStore(), domain.DefaultAppSettings())

	assert.Same(t, f.editor, f.session.Editor())
}

func TestSession_NewDocument(t *testing.T) {
	f := newSessionFixture(t, memory.NewDocumentStore(), domain.DefaultAppSettings())
	f.editor.SetValue("draft")
	before := f.session.State().Generation

	f.session.NewDocument(false)

	state := f.session.State()
	assert.Greater(t, state.Generation, before)
	assert.Empty(t, f.editor.Value())
	assert.Equal(t, 2, f.editor.resets)
	assert.Equal(t, []string{"/"}, f.historyPaths(t))

	f.session.NewDocument(true)
	assert.Equal(t, []string{"/"}, f.historyPaths(t))
}

func TestSession_CreateTypeSave(t *testing.T) {
	store := memory.NewDocumentStore(fixedKey("abc123"))
	f := newSessionFixture(t, store, domain.DefaultAppSettings())

	f.editor.SetValue("hello")
	payload, err := f.session.LockDocument(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "abc123", payload.Key)

	state := f.session.State()
	assert.True(t, state.Saved)
	assert.Equal(t, "abc123", state.Key)
	assert.Equal(t, "haste - abc123", state.Title)
	assert.Equal(t, "/abc123", state.Path)
	assert.False(t, state.IsEnabled(domain.ActionSave))
	for _, a := range []domain.ActionName{domain.ActionDuplicate, domain.ActionRaw, domain.ActionTwitter, domain.ActionNew} {
		assert.True(t, state.IsEnabled(a), a)
	}

	assert.Equal(t, "haste - abc123", f.presenter.title)
	assert.Equal(t, domain.FullKey(), f.presenter.enabled)
	assert.Equal(t, []string{"/abc123"}, f.historyPaths(t))
	assert.Equal(t, []string{"http://localhost:7777/abc123"}, f.opener.copied)
}

func TestSession_LockPathUsesConfiguredType(t *testing.T) {
	settings := domain.DefaultAppSettings()
	settings.Document.ContentType = "python"
	f := newSessionFixture(t, memory.NewDocumentStore(fixedKey("abc123")), settings)

	f.editor.SetValue("print(1)")
	_, err := f.session.LockDocument(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/abc123.py", f.session.State().Path)
}

func TestSession_LockWithoutClipboard(t *testing.T) {
	settings := domain.DefaultAppSettings()
	settings.Share.Clipboard = false
	f := newSessionFixture(t, memory.NewDocumentStore(), settings)

	f.editor.SetValue("hello")
	_, err := f.session.LockDocument(context.Background())

	require.NoError(t, err)
	assert.Empty(t, f.opener.copied)
}

func TestSession_LockClipboardFailureIsNotFatal(t *testing.T) {
	f := newSessionFixture(t, memory.NewDocumentStore(), domain.DefaultAppSettings())
	f.opener.copyErr = errors.New("no display")

	f.editor.SetValue("hello")
	_, err := f.session.LockDocument(context.Background())

	require.NoError(t, err)
	assert.True(t, f.session.State().Saved)
}

func TestSession_LockTwiceIsRefusedLocally(t *testing.T) {
	store := memory.NewDocumentStore()
	f := newSessionFixture(t, store, domain.DefaultAppSettings())
	f.editor.SetValue("hello")

	_, err := f.session.LockDocument(context.Background())
	require.NoError(t, err)

	_, err = f.session.LockDocument(context.Background())

	assert.ErrorIs(t, err, domain.ErrAlreadySaved)
	_, creates := store.Requests()
	assert.Equal(t, 1, creates)
	assert.Empty(t, f.presenter.messages)
}

func TestSession_LockEmptyDocument(t *testing.T) {
	store := memory.NewDocumentStore()
	f := newSessionFixture(t, store, domain.DefaultAppSettings())
	f.editor.SetValue("  \n\t")

	_, err := f.session.LockDocument(context.Background())

	assert.ErrorIs(t, err, domain.ErrEmptyDocument)
	_, creates := store.Requests()
	assert.Equal(t, 0, creates)
}

func TestSession_LockRejected(t *testing.T) {
	store := memory.NewDocumentStore()
	store.FailCreates(domain.NewSaveError("too large"))
	f := newSessionFixture(t, store, domain.DefaultAppSettings())
	f.editor.SetValue("hello")

	_, err := f.session.LockDocument(context.Background())

	assert.ErrorIs(t, err, domain.ErrSaveRejected)
	state := f.session.State()
	assert.False(t, state.Saved)
	assert.True(t, state.IsEnabled(domain.ActionSave))
	assert.Equal(t, []string{"too large"}, f.presenter.messages)
	assert.Equal(t, []driven.MessageLevel{driven.MessageError}, f.presenter.levels)
	assert.Equal(t, "hello", f.editor.Value(), "editor content survives a failed save")
}

func TestSession_LoadDocument(t *testing.T) {
	store := memory.NewDocumentStore(memory.WithDocuments(map[string]string{"xyz": "print(1)"}))
	f := newSessionFixture(t, store, domain.DefaultAppSettings())

	payload, err := f.session.LoadDocument(context.Background(), "xyz.py")

	require.NoError(t, err)
	assert.Equal(t, "xyz", payload.Key)
	assert.Equal(t, "print(1)", f.editor.Value())

	state := f.session.State()
	assert.True(t, state.Saved)
	assert.Equal(t, "xyz", state.Key)
	assert.Equal(t, "/xyz.py", state.Path)
	assert.Equal(t, "haste - xyz", state.Title)
	assert.Equal(t, domain.FullKey(), state.Enabled)
	assert.Equal(t, []string{"/xyz.py"}, f.historyPaths(t))
}

func TestSession_LoadIgnoresExtensionForType(t *testing.T) {
	store := memory.NewDocumentStore(memory.WithDocuments(map[string]string{"xyz": "x"}))
	f := newSessionFixture(t, store, domain.DefaultAppSettings())

	payload, err := f.session.LoadDocument(context.Background(), "/xyz.rb.old")

	require.NoError(t, err)
	assert.Empty(t, payload.ContentType)
	gets, _ := store.Requests()
	assert.Equal(t, 1, gets)
}

func TestSession_LoadFailureFallsBackToNew(t *testing.T) {
	f := newSessionFixture(t, memory.NewDocumentStore(), domain.DefaultAppSettings())
	f.editor.SetValue("draft")

	_, err := f.session.LoadDocument(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	state := f.session.State()
	assert.False(t, state.Saved)
	assert.Equal(t, "/", state.Path)
	assert.Equal(t, "haste", state.Title)
	assert.Empty(t, f.editor.Value())
	assert.Equal(t, []string{"/"}, f.historyPaths(t))
}

func TestSession_DuplicateDocument(t *testing.T) {
	store := memory.NewDocumentStore(memory.WithDocuments(map[string]string{"xyz": "print(1)"}))
	f := newSessionFixture(t, store, domain.DefaultAppSettings())
	_, err := f.session.LoadDocument(context.Background(), "xyz")
	require.NoError(t, err)

	require.NoError(t, f.session.DuplicateDocument())

	state := f.session.State()
	assert.False(t, state.Saved)
	assert.Empty(t, state.Key)
	assert.Equal(t, "/", state.Path)
	assert.Equal(t, "print(1)", f.editor.Value())
	assert.Equal(t, domain.LightKey(), f.presenter.enabled)
	assert.Equal(t, []string{"/xyz", "/"}, f.historyPaths(t))
}

func TestSession_DuplicateRequiresLockedDocument(t *testing.T) {
	f := newSessionFixture(t, memory.NewDocumentStore(), domain.DefaultAppSettings())
	f.editor.SetValue("draft")

	err := f.session.DuplicateDocument()

	assert.ErrorIs(t, err, domain.ErrNotSaved)
	assert.Equal(t, "draft", f.editor.Value())
}

func TestSession_StaleLoadCompletion(t *testing.T) {
	store := memory.NewDocumentStore(memory.WithDocuments(map[string]string{"old": "old text"}))
	f := newSessionFixture(t, store, domain.DefaultAppSettings())

	req := f.session.BeginLoad("old")
	f.session.NewDocument(false)
	f.editor.SetValue("new text")

	err := f.session.Complete(req(context.Background()))

	assert.ErrorIs(t, err, domain.ErrStaleCompletion)
	state := f.session.State()
	assert.False(t, state.Saved)
	assert.Equal(t, "new text", f.editor.Value())
	assert.Equal(t, "haste", state.Title)
}

func TestSession_StaleSaveCompletion(t *testing.T) {
	gated := newGatedStore(memory.NewDocumentStore(fixedKey("abc123")))
	f := newSessionFixture(t, gated, domain.DefaultAppSettings())
	f.editor.SetValue("hello")

	req, err := f.session.BeginLock()
	require.NoError(t, err)

	done := make(chan domain.Completion, 1)
	go func() { done <- req(context.Background()) }()
	<-gated.started

	f.session.NewDocument(false)
	close(gated.release)

	assert.ErrorIs(t, f.session.Complete(<-done), domain.ErrStaleCompletion)
	assert.False(t, f.session.State().Saved)
	assert.Empty(t, f.opener.copied)
}

func TestSession_BeginLockWhileInFlight(t *testing.T) {
	gated := newGatedStore(memory.NewDocumentStore())
	f := newSessionFixture(t, gated, domain.DefaultAppSettings())
	f.editor.SetValue("hello")

	req, err := f.session.BeginLock()
	require.NoError(t, err)

	done := make(chan domain.Completion, 1)
	go func() { done <- req(context.Background()) }()
	<-gated.started

	assert.True(t, f.session.State().Busy)
	_, err = f.session.BeginLock()
	assert.ErrorIs(t, err, domain.ErrRequestInFlight)

	close(gated.release)
	require.NoError(t, f.session.Complete(<-done))
	assert.True(t, f.session.State().Saved)
}

func TestSession_BusyUntilComplete(t *testing.T) {
	f := newSessionFixture(t, memory.NewDocumentStore(fixedKey("abc123")), domain.DefaultAppSettings())
	f.editor.SetValue("hello")

	req, err := f.session.BeginLock()
	require.NoError(t, err)
	assert.True(t, f.session.State().Busy, "busy before the request runs")

	_, err = f.session.BeginLock()
	assert.ErrorIs(t, err, domain.ErrRequestInFlight)

	// Text typed after the save was issued never reaches the server.
	f.editor.SetValue("helloX")
	require.NoError(t, f.session.Complete(req(context.Background())))

	state := f.session.State()
	assert.False(t, state.Busy)
	assert.True(t, state.Saved)
	assert.Equal(t, "hello", f.editor.Value())
	assert.Equal(t, "hello", f.session.Active().Data())
}

func TestSession_FailedLockClearsBusy(t *testing.T) {
	store := memory.NewDocumentStore()
	store.FailCreates(domain.NewSaveError("too large"))
	f := newSessionFixture(t, store, domain.DefaultAppSettings())
	f.editor.SetValue("hello")

	req, err := f.session.BeginLock()
	require.NoError(t, err)
	assert.Error(t, f.session.Complete(req(context.Background())))

	assert.False(t, f.session.State().Busy)
	_, err = f.session.BeginLock()
	assert.NoError(t, err)
}

func TestSession_NewDocumentClearsBusy(t *testing.T) {
	f := newSessionFixture(t, memory.NewDocumentStore(), domain.DefaultAppSettings())
	f.editor.SetValue("hello")

	_, err := f.session.BeginLock()
	require.NoError(t, err)
	f.session.NewDocument(false)

	assert.False(t, f.session.State().Busy)
}

func TestSession_CompleteUnknownOperation(t *testing.T) {
	f := newSessionFixture(t, memory.NewDocumentStore(), domain.DefaultAppSettings())

	err := f.session.Complete(domain.Completion{Generation: f.session.State().Generation, Operation: "delete"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSession_SetSettingsRetitles(t *testing.T) {
	f := newSessionFixture(t, memory.NewDocumentStore(fixedKey("k1")), domain.DefaultAppSettings())
	f.editor.SetValue("hello")
	_, err := f.session.LockDocument(context.Background())
	require.NoError(t, err)

	settings := domain.DefaultAppSettings()
	settings.Name = "paste"
	f.session.SetSettings(settings)

	assert.Equal(t, "paste - k1", f.session.State().Title)
	assert.Equal(t, "paste - k1", f.presenter.title)
}

func TestSession_Raw(t *testing.T) {
	store := memory.NewDocumentStore(memory.WithDocuments(map[string]string{"xyz": "print(1)"}))
	f := newSessionFixture(t, store, domain.DefaultAppSettings())
	before := f.session.State()

	text, err := f.session.Raw(context.Background(), "xyz.py")

	require.NoError(t, err)
	assert.Equal(t, "print(1)", text)
	assert.Equal(t, before, f.session.State(), "raw does not replace the active document")

	_, err = f.session.Raw(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.session.Raw(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSession_HistoryWriteFailureIsNotFatal(t *testing.T) {
	s := NewSession(memory.NewDocumentStore(), domain.DefaultAppSettings(),
		WithHistory(&brokenHistory{}))

	s.NewDocument(false)

	assert.Equal(t, "/", s.State().Path)
}

type brokenHistory struct {
	driven.History
}

func (h *brokenHistory) Push(context.Context, domain.HistoryEntry) error {
	return errors.New("disk full")
}

// pasteServer is a minimal paste service for end-to-end session tests.
func pasteServer(t *testing.T, docs map[string]string, createStatus int, createBody any) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /documents/{key}", func(w http.ResponseWriter, r *http.Request) {
		data, ok := docs[r.PathValue("key")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Document not found."})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"data": data, "key": r.PathValue("key")})
	})
	mux.HandleFunc("POST /documents", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(createStatus)
		_ = json.NewEncoder(w).Encode(createBody)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSession_EndToEnd(t *testing.T) {
	t.Run("create type save", func(t *testing.T) {
		srv := pasteServer(t, nil, http.StatusOK, map[string]string{"key": "abc123"})
		f := newSessionFixture(t, httpstore.New(httpstore.Config{BaseURL: srv.URL}), domain.DefaultAppSettings())

		f.editor.SetValue("hello")
		_, err := f.session.LockDocument(context.Background())

		require.NoError(t, err)
		state := f.session.State()
		assert.Contains(t, state.Title, "abc123")
		assert.Equal(t, "/abc123", state.Path)
		assert.False(t, state.IsEnabled(domain.ActionSave))
		assert.True(t, state.IsEnabled(domain.ActionDuplicate))
		assert.True(t, state.IsEnabled(domain.ActionRaw))
		assert.True(t, state.IsEnabled(domain.ActionTwitter))
	})

	t.Run("load with extension", func(t *testing.T) {
		srv := pasteServer(t, map[string]string{"xyz": "print(1)"}, http.StatusOK, nil)
		f := newSessionFixture(t, httpstore.New(httpstore.Config{BaseURL: srv.URL}), domain.DefaultAppSettings())

		_, err := f.session.LoadDocument(context.Background(), "xyz.py")

		require.NoError(t, err)
		assert.Equal(t, "print(1)", f.editor.Value())
		state := f.session.State()
		assert.True(t, state.Saved)
		assert.Equal(t, "xyz", state.Key)
		assert.Equal(t, domain.FullKey(), state.Enabled)
	})

	t.Run("save rejected", func(t *testing.T) {
		srv := pasteServer(t, nil, http.StatusBadRequest, map[string]string{"message": "too large"})
		f := newSessionFixture(t, httpstore.New(httpstore.Config{BaseURL: srv.URL}), domain.DefaultAppSettings())

		f.editor.SetValue("hello")
		_, err := f.session.LockDocument(context.Background())

		require.Error(t, err)
		state := f.session.State()
		assert.False(t, state.Saved)
		assert.True(t, state.IsEnabled(domain.ActionSave))
		assert.Equal(t, []string{"too large"}, f.presenter.messages)
	})

	t.Run("save with malformed error", func(t *testing.T) {
		srv := pasteServer(t, nil, http.StatusInternalServerError, "oops")
		f := newSessionFixture(t, httpstore.New(httpstore.Config{BaseURL: srv.URL}), domain.DefaultAppSettings())

		f.editor.SetValue("hello")
		_, err := f.session.LockDocument(context.Background())

		assert.ErrorIs(t, err, domain.ErrMalformedErrorResponse)
		assert.Equal(t, []string{domain.GenericSaveFailure}, f.presenter.messages)
	})

	t.Run("load missing", func(t *testing.T) {
		srv := pasteServer(t, nil, http.StatusOK, nil)
		f := newSessionFixture(t, httpstore.New(httpstore.Config{BaseURL: srv.URL}), domain.DefaultAppSettings())

		_, err := f.session.LoadDocument(context.Background(), "nope")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, "/", f.session.State().Path)
	})
}
