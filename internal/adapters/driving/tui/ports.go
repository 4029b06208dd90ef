// Package tui provides an interactive terminal editor for haste documents.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"context"

	"github.com/custodia-labs/haste-cli/internal/core/domain"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driven"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driving"
)

// SessionFactory builds the session and its action table around the TUI's
// editor widget and presenter.
type SessionFactory func(editor driven.Editor, presenter driven.Presenter) (driving.SessionController, driving.ActionService)

// WatchFunc blocks until ctx is cancelled, calling fn after each change to
// the configuration.
type WatchFunc func(ctx context.Context, fn func()) error

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// Sessions creates the document session.
	Sessions SessionFactory

	// Settings reads application settings.
	Settings driving.SettingsService

	// History lists recorded locations. Optional.
	History driving.HistoryService

	// Watch reports configuration changes. Optional.
	Watch WatchFunc
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Sessions == nil {
		return ErrMissingSessions
	}
	if p.Settings == nil {
		return ErrMissingSettings
	}
	return nil
}

// settingsReceiver is implemented by sessions that accept reloaded settings.
type settingsReceiver interface {
	SetSettings(settings domain.AppSettings)
}
