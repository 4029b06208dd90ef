package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/custodia-labs/haste-cli/internal/core/domain"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driven"
)

// Document is a single paste. It starts editable and becomes locked by
// a successful Load or Save; once locked it never becomes editable again.
// Each instance permits at most one store request at a time.
type Document struct {
	store       driven.DocumentStore
	contentType string

	mu       sync.Mutex
	key      string
	data     string
	saved    bool
	inFlight bool
}

// NewDocument creates an unsaved document backed by store.
// contentType is reported for every successful load or save.
func NewDocument(store driven.DocumentStore, contentType string) *Document {
	return &Document{
		store:       store,
		contentType: contentType,
	}
}

// Key returns the store key, empty until locked.
func (d *Document) Key() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.key
}

// Data returns the content as last loaded or submitted.
func (d *Document) Data() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.data
}

// Saved reports whether the document is locked.
func (d *Document) Saved() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.saved
}

// Busy reports whether a store request is in flight.
func (d *Document) Busy() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.inFlight
}

// Load fetches key from the store and locks the document to it.
// On failure the document stays unsaved and can still be saved.
func (d *Document) Load(ctx context.Context, key string) (*domain.Payload, error) {
	if key == "" {
		return nil, domain.ErrNotFound
	}
	if err := d.begin(); err != nil {
		return nil, err
	}

	content, err := d.store.Get(ctx, key)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.inFlight = false

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}

	d.saved = true
	d.key = key
	d.data = content

	return &domain.Payload{
		Content:     content,
		Key:         key,
		ContentType: d.contentType,
	}, nil
}

// Save submits content and locks the document to the assigned key.
// It returns domain.ErrAlreadySaved without contacting the store when the
// document is already locked. A refused save leaves the document editable.
func (d *Document) Save(ctx context.Context, content string) (*domain.Payload, error) {
	d.mu.Lock()
	if d.saved {
		d.mu.Unlock()
		return nil, domain.ErrAlreadySaved
	}
	if d.inFlight {
		d.mu.Unlock()
		return nil, domain.ErrRequestInFlight
	}
	d.inFlight = true
	d.data = content
	d.mu.Unlock()

	key, err := d.store.Create(ctx, content)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.inFlight = false

	if err != nil {
		var saveErr *domain.SaveError
		if errors.As(err, &saveErr) {
			return nil, saveErr
		}
		return nil, domain.NewSaveError("")
	}

	d.saved = true
	d.key = key

	return &domain.Payload{
		Content:     content,
		Key:         key,
		ContentType: d.contentType,
	}, nil
}

// begin marks a load as in flight.
func (d *Document) begin() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.inFlight {
		return domain.ErrRequestInFlight
	}
	d.inFlight = true
	return nil
}
