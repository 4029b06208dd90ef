package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/haste-cli/internal/core/domain"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driven"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyServerURL      = "server.url"
	keyServerTimeout  = "server.timeout_seconds"
	keyServerRPS      = "server.requests_per_second"
	keyAppName        = "app.name"
	keyDocumentType   = "document.content_type"
	keyShareTwitter   = "share.twitter"
	keyShareClipboard = "share.clipboard"
	keyHistoryEnabled = "history.enabled"
)

// settingKind is how a key's string form is parsed.
type settingKind int

const (
	kindString settingKind = iota
	kindInt
	kindFloat
	kindBool
)

var settingKeys = []struct {
	key  string
	kind settingKind
}{
	{keyServerURL, kindString},
	{keyServerTimeout, kindInt},
	{keyServerRPS, kindFloat},
	{keyAppName, kindString},
	{keyDocumentType, kindString},
	{keyShareTwitter, kindBool},
	{keyShareClipboard, kindBool},
	{keyHistoryEnabled, kindBool},
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Name: s.getString(keyAppName, defaults.Name),
		Server: domain.ServerSettings{
			URL:               s.getString(keyServerURL, defaults.Server.URL),
			Timeout:           s.getSeconds(keyServerTimeout, defaults.Server.Timeout),
			RequestsPerSecond: s.getFloat(keyServerRPS, defaults.Server.RequestsPerSecond),
		},
		Document: domain.DocumentSettings{
			// Empty is valid: plain text.
			ContentType: s.configStore.GetString(keyDocumentType),
		},
		Share: domain.ShareSettings{
			Twitter:   s.getBool(keyShareTwitter, defaults.Share.Twitter),
			Clipboard: s.getBool(keyShareClipboard, defaults.Share.Clipboard),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
		},
	}

	if err := settings.Server.Validate(); err != nil {
		return nil, fmt.Errorf("%s %q: %w", keyServerURL, settings.Server.URL, err)
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Server.Validate(); err != nil {
		return fmt.Errorf("%s %q: %w", keyServerURL, settings.Server.URL, err)
	}

	values := []struct {
		key   string
		value any
	}{
		{keyServerURL, settings.Server.URL},
		{keyServerTimeout, int64(settings.Server.Timeout / time.Second)},
		{keyServerRPS, settings.Server.RequestsPerSecond},
		{keyAppName, settings.Name},
		{keyDocumentType, settings.Document.ContentType},
		{keyShareTwitter, settings.Share.Twitter},
		{keyShareClipboard, settings.Share.Clipboard},
		{keyHistoryEnabled, settings.History.Enabled},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value according to key and stores it.
func (s *SettingsService) Set(key, value string) error {
	for _, k := range settingKeys {
		if k.key != key {
			continue
		}
		parsed, err := parseSetting(k.kind, value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if key == keyServerURL {
			if err := (domain.ServerSettings{URL: value}).Validate(); err != nil {
				return fmt.Errorf("%s %q: %w", key, value, err)
			}
		}
		if key == keyDocumentType {
			parsed = domain.LookupTypeByExtension(strings.TrimPrefix(value, "."))
		}
		return s.configStore.Set(key, parsed)
	}
	return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
}

// Keys returns the supported setting keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	for i, k := range settingKeys {
		keys[i] = k.key
	}
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func parseSetting(kind settingKind, value string) (any, error) {
	switch kind {
	case kindInt:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("expected a positive integer, got %q: %w", value, domain.ErrInvalidInput)
		}
		return n, nil
	case kindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return nil, fmt.Errorf("expected a positive number, got %q: %w", value, domain.ErrInvalidInput)
		}
		return f, nil
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("expected true or false, got %q: %w", value, domain.ErrInvalidInput)
		}
		return b, nil
	default:
		return value, nil
	}
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getSeconds(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return time.Duration(val) * time.Second
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
