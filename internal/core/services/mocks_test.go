package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/haste-cli/internal/core/domain"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driven"
)

// mockEditor records calls made by the session.
type mockEditor struct {
	mu      sync.Mutex
	value   string
	focused int
	resets  int
}

func (e *mockEditor) Value() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.value
}

func (e *mockEditor) SetValue(v string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value = v
}

func (e *mockEditor) Focus() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.focused++
}

func (e *mockEditor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resets++
}

// mockPresenter records what the session asked to display.
type mockPresenter struct {
	mu       sync.Mutex
	title    string
	messages []string
	levels   []driven.MessageLevel
	enabled  []domain.ActionName
}

func (p *mockPresenter) SetTitle(title string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.title = title
}

func (p *mockPresenter) ShowMessage(msg string, level driven.MessageLevel) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	p.levels = append(p.levels, level)
}

func (p *mockPresenter) ConfigureKey(enabled []domain.ActionName) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = enabled
}

// mockOpener records opened URLs and clipboard writes.
type mockOpener struct {
	opened  []string
	copied  []string
	openErr error
	copyErr error
}

func (o *mockOpener) Open(url string) error {
	if o.openErr != nil {
		return o.openErr
	}
	o.opened = append(o.opened, url)
	return nil
}

func (o *mockOpener) Copy(text string) error {
	if o.copyErr != nil {
		return o.copyErr
	}
	o.copied = append(o.copied, text)
	return nil
}

// gatedStore blocks every call until release is closed.
type gatedStore struct {
	driven.DocumentStore
	release chan struct{}
	started chan struct{}
}

func newGatedStore(inner driven.DocumentStore) *gatedStore {
	return &gatedStore{
		DocumentStore: inner,
		release:       make(chan struct{}),
		started:       make(chan struct{}, 10),
	}
}

func (s *gatedStore) Get(ctx context.Context, key string) (string, error) {
	s.started <- struct{}{}
	<-s.release
	return s.DocumentStore.Get(ctx, key)
}

func (s *gatedStore) Create(ctx context.Context, content string) (string, error) {
	s.started <- struct{}{}
	<-s.release
	return s.DocumentStore.Create(ctx, content)
}

// failingStore fails every call with err.
type failingStore struct {
	err error
}

func (s *failingStore) Get(context.Context, string) (string, error) {
	return "", s.err
}

func (s *failingStore) Create(context.Context, string) (string, error) {
	return "", s.err
}

func (s *failingStore) Raw(context.Context, string) (string, error) {
	return "", s.err
}

var errTransport = errors.New("connection refused")
