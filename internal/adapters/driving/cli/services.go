package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/haste-cli/internal/core/domain"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driven"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driving"
	"github.com/custodia-labs/haste-cli/internal/logger"
)

// SessionFactory builds a session and its action table around an editor
// and presenter. Both may be nil.
type SessionFactory func(editor driven.Editor, presenter driven.Presenter) (driving.SessionController, driving.ActionService)

// Services holds everything the commands need. Only Sessions and
// Settings are required.
type Services struct {
	Sessions    SessionFactory
	Settings    driving.SettingsService
	History     driving.HistoryService
	Opener      driven.Opener
	ConfigPath  string
	WatchConfig func(ctx context.Context, fn func()) error
}

var (
	sessions        SessionFactory
	settingsService driving.SettingsService
	historyService  driving.HistoryService
	opener          driven.Opener
	configPath      string
	watchConfig     func(ctx context.Context, fn func()) error
)

var (
	errSessionsNotConfigured = errors.New("session factory not configured")
	errSettingsNotConfigured = errors.New("settings service not configured")
	errHistoryNotConfigured  = errors.New("history is disabled")
)

// SetServices injects the services used by all commands.
func SetServices(s *Services) {
	sessions = s.Sessions
	settingsService = s.Settings
	historyService = s.History
	opener = s.Opener
	configPath = s.ConfigPath
	watchConfig = s.WatchConfig
}

// currentSettings returns the configured settings, falling back to the
// defaults when none can be read.
func currentSettings() domain.AppSettings {
	if settingsService == nil {
		return domain.DefaultAppSettings()
	}
	s, err := settingsService.Get()
	if err != nil {
		logger.Warn("reading settings: %v", err)
		return settingsService.GetDefaults()
	}
	return *s
}

// openSession creates a headless session. Its text lives in the
// session's own buffer, reached through Editor.
func openSession() (driving.SessionController, driving.ActionService, error) {
	if sessions == nil {
		return nil, nil, errSessionsNotConfigured
	}
	session, actions := sessions(nil, presenter{})
	return session, actions, nil
}

// dispatch runs an action and completes any request it returns.
func dispatch(ctx context.Context, session driving.SessionController, actions driving.ActionService, name domain.ActionName) error {
	req, err := actions.Dispatch(ctx, name)
	if err != nil {
		return err
	}
	if req == nil {
		return nil
	}
	if err := session.Complete(req(ctx)); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// presenter routes session output to the debug log. Errors reach the
// user through the command's returned error.
type presenter struct{}

func (presenter) SetTitle(title string) {
	logger.Debug("title: %s", title)
}

func (presenter) ShowMessage(msg string, level driven.MessageLevel) {
	logger.Debug("%s: %s", level, msg)
}

func (presenter) ConfigureKey(enabled []domain.ActionName) {
	logger.Debug("enabled actions: %v", enabled)
}
