package domain

import (
	"net/url"
	"strings"
	"time"
)

// Default setting values.
const (
	DefaultServerURL         = "http://localhost:7777"
	DefaultTimeout           = 30 * time.Second
	DefaultRequestsPerSecond = 5.0
	DefaultAppName           = "haste"
)

// ServerSettings holds document store connection configuration.
type ServerSettings struct {
	// URL is the base URL of the paste service.
	URL string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// RequestsPerSecond throttles store requests client-side.
	RequestsPerSecond float64
}

// Validate checks that the server URL is absolute http(s).
func (s ServerSettings) Validate() error {
	u, err := url.Parse(s.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidInput
	}
	return nil
}

// DocumentSettings holds document defaults.
type DocumentSettings struct {
	// ContentType is the syntax type reported for every loaded or saved
	// document. Empty means plain text, which adds no path extension.
	ContentType string
}

// ShareSettings controls what happens once a document is locked.
type ShareSettings struct {
	// Twitter enables the twitter share action.
	Twitter bool

	// Clipboard copies the document URL after a successful lock.
	Clipboard bool
}

// HistorySettings controls the local location history.
type HistorySettings struct {
	// Enabled persists history to the local database.
	Enabled bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Name is shown in titles ("haste - abc123").
	Name string

	// Server holds store connection settings.
	Server ServerSettings

	// Document holds document defaults.
	Document DocumentSettings

	// Share holds post-lock behaviour.
	Share ShareSettings

	// History holds history behaviour.
	History HistorySettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Name: DefaultAppName,
		Server: ServerSettings{
			URL:               DefaultServerURL,
			Timeout:           DefaultTimeout,
			RequestsPerSecond: DefaultRequestsPerSecond,
		},
		Share: ShareSettings{
			Twitter:   false,
			Clipboard: true,
		},
		History: HistorySettings{
			Enabled: true,
		},
	}
}

// DocumentURL joins the server URL and a document path.
func (s AppSettings) DocumentURL(path string) string {
	return strings.TrimRight(s.Server.URL, "/") + path
}
