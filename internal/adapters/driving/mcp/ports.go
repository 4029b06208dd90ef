package mcp

import (
	"github.com/custodia-labs/haste-cli/internal/core/domain"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driving"
)

// SessionFactory creates a headless session. Tool calls run concurrently,
// so every call gets its own session.
type SessionFactory func() driving.SessionController

// Ports aggregates the driving ports required by the MCP server.
type Ports struct {
	// Sessions creates an isolated session per tool call.
	Sessions SessionFactory

	// Settings resolves document URLs. Optional; defaults apply when nil.
	Settings driving.SettingsService

	// History lists recorded locations. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Sessions == nil {
		return ErrMissingSessions
	}
	return nil
}

// settings returns the configured settings or the defaults.
func (p *Ports) settings() domain.AppSettings {
	if p.Settings != nil {
		if s, err := p.Settings.Get(); err == nil {
			return *s
		}
	}
	return domain.DefaultAppSettings()
}
