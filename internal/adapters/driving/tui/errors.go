package tui

import "errors"

// ErrMissingSessions is returned when no session factory is provided.
var ErrMissingSessions = errors.New("tui: session factory is required")

// ErrMissingSettings is returned when the settings service is not provided.
var ErrMissingSettings = errors.New("tui: settings service is required")
