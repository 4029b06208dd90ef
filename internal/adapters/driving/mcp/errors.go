// Package mcp provides an MCP (Model Context Protocol) server adapter for haste.
// It lets AI assistants load, save and inspect pastes through the session core.
package mcp

import "errors"

// ErrMissingSessions is returned when no session factory is provided.
var ErrMissingSessions = errors.New("mcp: session factory is required")
