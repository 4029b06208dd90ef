package driving

import (
	"context"

	"github.com/custodia-labs/haste-cli/internal/core/domain"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driven"
)

// Request is a single-shot store operation bound to the document that
// issued it. It may run off the UI goroutine; its result is handed back
// to SessionController.Complete.
type Request func(ctx context.Context) domain.Completion

// SessionController owns the active document and its transitions.
// It is used by TUI, CLI, and MCP adapters.
type SessionController interface {
	// NewDocument replaces the active document with an empty editable one.
	// hideHistory suppresses pushing "/" to history.
	NewDocument(hideHistory bool)

	// LoadDocument loads a raw key ("abc", "abc.py") into a fresh document.
	// On failure the session falls back to a new document.
	LoadDocument(ctx context.Context, raw string) (*domain.Payload, error)

	// LockDocument saves the editor content and locks the active document.
	LockDocument(ctx context.Context) (*domain.Payload, error)

	// DuplicateDocument copies a locked document into a new editable one.
	DuplicateDocument() error

	// BeginLoad starts an asynchronous load. The active document is
	// replaced immediately; the request performs the store call.
	BeginLoad(raw string) Request

	// BeginLock starts an asynchronous lock of the active document.
	BeginLock() (Request, error)

	// Complete applies a finished request. Completions for a document that
	// is no longer active return domain.ErrStaleCompletion and change nothing.
	Complete(c domain.Completion) error

	// Raw fetches the plain text behind raw's key without touching the
	// active document.
	Raw(ctx context.Context, raw string) (string, error)

	// State returns a snapshot of the session.
	State() domain.SessionState

	// Editor returns the text the session saves from and loads into:
	// the attached widget, or an internal buffer when none was given.
	Editor() driven.Editor
}

// Action is one row of the action table.
type Action struct {
	// Name identifies the action.
	Name domain.ActionName

	// Label is the human-readable name.
	Label string

	// Keys are the key strings that trigger the action.
	Keys []string

	// ShortcutDescription describes the keys for tooltips and help.
	ShortcutDescription string

	// Enabled is the precondition over session state.
	Enabled func() bool

	// Run performs the action. A non-nil Request must be run and completed
	// by the caller (asynchronously in interactive adapters).
	Run func(ctx context.Context) (Request, error)
}

// ActionService dispatches actions from the declarative action table.
type ActionService interface {
	// Actions returns the table in display order.
	Actions() []Action

	// Dispatch runs the named action if it is enabled.
	Dispatch(ctx context.Context, name domain.ActionName) (Request, error)

	// DispatchKey runs the first enabled action bound to key.
	// The boolean reports whether any action matched.
	DispatchKey(ctx context.Context, key string) (Request, bool, error)
}
