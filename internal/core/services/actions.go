package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/custodia-labs/haste-cli/internal/core/domain"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driving"
)

// Ensure ActionService implements the interface.
var _ driving.ActionService = (*ActionService)(nil)

// TwitterShareURL is the prefix of the twitter share link.
const TwitterShareURL = "https://twitter.com/share?url="

// errNoOpener is returned by navigation actions when nothing can open URLs.
var errNoOpener = errors.New("no opener configured")

// ActionService dispatches the session's action table.
type ActionService struct {
	session *Session
	actions []driving.Action
}

// NewActionService builds the action table for session.
func NewActionService(session *Session) *ActionService {
	s := &ActionService{session: session}
	s.actions = s.table()
	return s
}

// Actions returns the table in display order.
func (s *ActionService) Actions() []driving.Action {
	return s.actions
}

// Dispatch runs the named action if it is enabled.
func (s *ActionService) Dispatch(ctx context.Context, name domain.ActionName) (driving.Request, error) {
	for _, a := range s.actions {
		if a.Name != name {
			continue
		}
		if !a.Enabled() {
			return nil, fmt.Errorf("%s: %w", name, domain.ErrActionDisabled)
		}
		return a.Run(ctx)
	}
	return nil, fmt.Errorf("%s: %w", name, domain.ErrUnknownAction)
}

// DispatchKey runs the first enabled action bound to key.
func (s *ActionService) DispatchKey(ctx context.Context, key string) (driving.Request, bool, error) {
	var matched *driving.Action
	for i := range s.actions {
		a := &s.actions[i]
		if !hasKey(a.Keys, key) {
			continue
		}
		if a.Enabled() {
			req, err := a.Run(ctx)
			return req, true, err
		}
		if matched == nil {
			matched = a
		}
	}
	if matched != nil {
		return nil, true, fmt.Errorf("%s: %w", matched.Name, domain.ErrActionDisabled)
	}
	return nil, false, nil
}

// RawURL returns the raw-text URL of the active document.
func (s *ActionService) RawURL() (string, error) {
	state := s.session.State()
	if !state.Saved {
		return "", domain.ErrNotSaved
	}
	return RawURL(s.session.Settings(), state.Key), nil
}

// ShareURL returns the twitter share URL of the active document.
func (s *ActionService) ShareURL() (string, error) {
	state := s.session.State()
	if !state.Saved {
		return "", domain.ErrNotSaved
	}
	return ShareURL(s.session.Settings(), state.Path), nil
}

// RawURL joins the server URL and the raw path of key.
func RawURL(settings domain.AppSettings, key string) string {
	return settings.DocumentURL("/raw/" + key)
}

// ShareURL builds the twitter share link for a document path.
func ShareURL(settings domain.AppSettings, path string) string {
	return TwitterShareURL + url.QueryEscape(settings.DocumentURL(path))
}

func (s *ActionService) table() []driving.Action {
	saved := func() bool { return s.session.State().Saved }

	return []driving.Action{
		{
			Name:                domain.ActionSave,
			Label:               "Save",
			Keys:                []string{"ctrl+s"},
			ShortcutDescription: "ctrl+s",
			Enabled:             func() bool { return !saved() },
			Run: func(context.Context) (driving.Request, error) {
				return s.session.BeginLock()
			},
		},
		{
			Name:                domain.ActionNew,
			Label:               "New",
			Keys:                []string{"ctrl+n"},
			ShortcutDescription: "ctrl+n",
			Enabled:             func() bool { return true },
			Run: func(context.Context) (driving.Request, error) {
				s.session.NewDocument(s.session.State().Key == "")
				return nil, nil
			},
		},
		{
			Name:                domain.ActionDuplicate,
			Label:               "Duplicate & Edit",
			Keys:                []string{"ctrl+d"},
			ShortcutDescription: "ctrl+d",
			Enabled:             saved,
			Run: func(context.Context) (driving.Request, error) {
				return nil, s.session.DuplicateDocument()
			},
		},
		{
			Name:                domain.ActionRaw,
			Label:               "Just Text",
			Keys:                []string{"ctrl+r"},
			ShortcutDescription: "ctrl+r",
			Enabled:             saved,
			Run: func(context.Context) (driving.Request, error) {
				u, err := s.RawURL()
				if err != nil {
					return nil, err
				}
				return nil, s.open(u)
			},
		},
		{
			Name:                domain.ActionTwitter,
			Label:               "Twitter",
			Keys:                []string{"ctrl+t"},
			ShortcutDescription: "ctrl+t",
			Enabled: func() bool {
				return s.session.Settings().Share.Twitter && saved()
			},
			Run: func(context.Context) (driving.Request, error) {
				u, err := s.ShareURL()
				if err != nil {
					return nil, err
				}
				return nil, s.open(u)
			},
		},
	}
}

func (s *ActionService) open(u string) error {
	opener := s.session.Opener()
	if opener == nil {
		return errNoOpener
	}
	if err := opener.Open(u); err != nil {
		return fmt.Errorf("open %s: %w", u, err)
	}
	return nil
}

func hasKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
