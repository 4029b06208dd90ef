package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/haste-cli/internal/core/domain"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driven"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driving"
	"github.com/custodia-labs/haste-cli/internal/logger"
)

// Ensure Session implements the interface.
var _ driving.SessionController = (*Session)(nil)

// Session owns exactly one active Document and moves between the New
// (editable) and Locked (saved) states. Every transition replaces or
// mutates the active document; completions for replaced documents are
// ignored.
type Session struct {
	store     driven.DocumentStore
	editor    driven.Editor
	presenter driven.Presenter
	history   driven.History
	opener    driven.Opener
	ctx       context.Context

	mu         sync.Mutex
	settings   domain.AppSettings
	active     *Document
	generation uint64
	pending    bool
	title      string
	path       string
	loadPath   string
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithEditor attaches the text widget. Without one the session keeps
// text in an internal buffer.
func WithEditor(e driven.Editor) SessionOption {
	return func(s *Session) {
		if e != nil {
			s.editor = e
		}
	}
}

// WithPresenter attaches the title/message/action-bar renderer.
func WithPresenter(p driven.Presenter) SessionOption {
	return func(s *Session) {
		s.presenter = p
	}
}

// WithHistory attaches the location history.
func WithHistory(h driven.History) SessionOption {
	return func(s *Session) {
		s.history = h
	}
}

// WithOpener attaches browser and clipboard side effects.
func WithOpener(o driven.Opener) SessionOption {
	return func(s *Session) {
		s.opener = o
	}
}

// WithContext sets the context used for history writes.
func WithContext(ctx context.Context) SessionOption {
	return func(s *Session) {
		s.ctx = ctx
	}
}

// NewSession creates a session with a fresh editable document.
// The initial document does not push history.
func NewSession(store driven.DocumentStore, settings domain.AppSettings, opts ...SessionOption) *Session {
	s := &Session{
		store:    store,
		editor:   &textBuffer{},
		ctx:      context.Background(),
		settings: settings,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.NewDocument(true)
	return s
}

// Settings returns the settings the session was configured with.
func (s *Session) Settings() domain.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SetSettings replaces the settings. The active document keeps the content
// type it was created with; the title is re-rendered with the new name.
func (s *Session) SetSettings(settings domain.AppSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.setTitle(s.active.Key())
}

// Editor returns the attached text widget, or the internal buffer.
func (s *Session) Editor() driven.Editor {
	return s.editor
}

// Opener returns the attached opener, which may be nil.
func (s *Session) Opener() driven.Opener {
	return s.opener
}

// Active returns the active document.
func (s *Session) Active() *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// State returns a snapshot of the session.
func (s *Session) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.active.Saved()
	return domain.SessionState{
		Generation:  s.generation,
		Key:         s.active.Key(),
		Saved:       saved,
		Title:       s.title,
		Path:        s.path,
		ContentType: s.active.contentType,
		Enabled:     enabledFor(saved),
		Busy:        s.pending || s.active.Busy(),
	}
}

// NewDocument discards the active document and starts an empty one.
func (s *Session) NewDocument(hideHistory bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.newDocument(hideHistory)
}

// newDocument is NewDocument with the lock held.
func (s *Session) newDocument(hideHistory bool) {
	s.replace()
	s.path = domain.RootPath
	s.setTitle("")
	s.configureKey(false)

	s.editor.Reset()
	s.editor.SetValue("")
	s.editor.Focus()

	if !hideHistory {
		s.pushHistory(domain.HistoryEventNew, "")
	}
	logger.Debug("session: new document (generation %d)", s.generation)
}

// LoadDocument loads raw ("abc" or "abc.py") into a fresh document.
func (s *Session) LoadDocument(ctx context.Context, raw string) (*domain.Payload, error) {
	c := s.BeginLoad(raw)(ctx)
	if err := s.Complete(c); err != nil {
		return nil, err
	}
	return c.Payload, nil
}

// BeginLoad replaces the active document and returns the request that
// fetches raw's key. The extension, if any, does not affect the type.
func (s *Session) BeginLoad(raw string) driving.Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	rk := domain.ParseRawKey(raw)
	doc := s.replace()
	gen := s.generation
	s.loadPath = "/" + strings.TrimPrefix(raw, "/")
	s.pending = true
	s.configureKey(false)

	logger.Debug("session: loading %q (generation %d)", rk.Key, gen)

	return func(ctx context.Context) domain.Completion {
		p, err := doc.Load(ctx, rk.Key)
		return domain.Completion{Generation: gen, Operation: domain.OperationLoad, Payload: p, Err: err}
	}
}

// LockDocument saves the editor content to the active document.
func (s *Session) LockDocument(ctx context.Context) (*domain.Payload, error) {
	req, err := s.BeginLock()
	if err != nil {
		return nil, err
	}
	c := req(ctx)
	if err := s.Complete(c); err != nil {
		return nil, err
	}
	return c.Payload, nil
}

// BeginLock checks the lock preconditions and returns the save request.
// Locked documents yield domain.ErrAlreadySaved and blank content yields
// domain.ErrEmptyDocument; neither reaches the store.
func (s *Session) BeginLock() (driving.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.active
	if doc.Saved() {
		return nil, domain.ErrAlreadySaved
	}
	if s.pending || doc.Busy() {
		return nil, domain.ErrRequestInFlight
	}
	content := s.editor.Value()
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrEmptyDocument
	}

	// Busy until Complete, so the UI can freeze the text being submitted.
	s.pending = true
	gen := s.generation
	return func(ctx context.Context) domain.Completion {
		p, err := doc.Save(ctx, content)
		return domain.Completion{Generation: gen, Operation: domain.OperationSave, Payload: p, Err: err}
	}, nil
}

// Complete applies a finished request to the session.
func (s *Session) Complete(c domain.Completion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.Generation != s.generation {
		logger.Debug("session: ignoring %s completion for generation %d (active %d)",
			c.Operation, c.Generation, s.generation)
		return domain.ErrStaleCompletion
	}
	s.pending = false

	switch c.Operation {
	case domain.OperationLoad:
		return s.completeLoad(c)
	case domain.OperationSave:
		return s.completeSave(c)
	default:
		return domain.ErrInvalidInput
	}
}

func (s *Session) completeLoad(c domain.Completion) error {
	if c.Err != nil {
		logger.Debug("session: load failed: %v", c.Err)
		s.newDocument(false)
		return c.Err
	}

	s.path = s.loadPath
	s.setTitle(c.Payload.Key)
	s.configureKey(true)

	s.editor.SetValue(c.Payload.Content)
	s.editor.Focus()

	s.pushHistory(domain.HistoryEventLoad, c.Payload.Key)
	return nil
}

func (s *Session) completeSave(c domain.Completion) error {
	if c.Err != nil {
		if errors.Is(c.Err, domain.ErrAlreadySaved) {
			return c.Err
		}
		s.showMessage(c.Err.Error(), driven.MessageError)
		return c.Err
	}

	s.setTitle(c.Payload.Key)
	s.path = domain.DocumentPath(c.Payload.Key, c.Payload.ContentType)
	s.pushHistory(domain.HistoryEventLock, c.Payload.Key)
	s.configureKey(true)
	s.editor.SetValue(c.Payload.Content)

	if s.settings.Share.Clipboard && s.opener != nil {
		if err := s.opener.Copy(s.settings.DocumentURL(s.path)); err != nil {
			logger.Warn("copying document URL: %v", err)
		}
	}
	logger.Debug("session: locked %s", s.path)
	return nil
}

// Raw fetches the plain text of raw's key from the store.
func (s *Session) Raw(ctx context.Context, raw string) (string, error) {
	rk := domain.ParseRawKey(raw)
	if rk.Key == "" {
		return "", domain.ErrNotFound
	}
	text, err := s.store.Raw(ctx, rk.Key)
	if err != nil {
		return "", fmt.Errorf("raw %s: %w", rk.Key, err)
	}
	return text, nil
}

// DuplicateDocument starts a new editable document holding the content of
// the locked active one.
func (s *Session) DuplicateDocument() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active.Saved() {
		return domain.ErrNotSaved
	}
	data := s.active.Data()

	s.newDocument(false)
	s.editor.SetValue(data)
	s.editor.Focus()
	return nil
}

// replace installs a fresh document and advances the generation.
func (s *Session) replace() *Document {
	s.generation++
	s.pending = false
	s.active = NewDocument(s.store, s.settings.Document.ContentType)
	return s.active
}

func (s *Session) setTitle(key string) {
	s.title = s.settings.Name
	if key != "" {
		s.title = s.settings.Name + " - " + key
	}
	if s.presenter != nil {
		s.presenter.SetTitle(s.title)
	}
}

func (s *Session) configureKey(saved bool) {
	if s.presenter != nil {
		s.presenter.ConfigureKey(enabledFor(saved))
	}
}

func (s *Session) showMessage(msg string, level driven.MessageLevel) {
	if s.presenter != nil {
		s.presenter.ShowMessage(msg, level)
	}
}

func (s *Session) pushHistory(event, key string) {
	if s.history == nil || s.ctx == nil {
		return
	}
	entry := domain.HistoryEntry{
		Path:  s.path,
		Title: s.title,
		Key:   key,
		Event: event,
	}
	if err := s.history.Push(s.ctx, entry); err != nil {
		logger.Warn("recording history: %v", err)
	}
}

// enabledFor derives the enabled action set from the saved flag.
func enabledFor(saved bool) []domain.ActionName {
	if saved {
		return domain.FullKey()
	}
	return domain.LightKey()
}

// textBuffer is the editor used when no widget is attached.
type textBuffer struct {
	mu    sync.Mutex
	value string
}

func (b *textBuffer) Value() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

func (b *textBuffer) SetValue(value string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.value = value
}

func (b *textBuffer) Focus() {}

func (b *textBuffer) Reset() {}
