package driven

import "github.com/custodia-labs/haste-cli/internal/core/domain"

// MessageLevel classifies a user-facing message.
type MessageLevel string

// Message levels.
const (
	MessageInfo  MessageLevel = "info"
	MessageError MessageLevel = "error"
)

// Presenter renders session state that is not document text.
type Presenter interface {
	// SetTitle shows the window title.
	SetTitle(title string)

	// ShowMessage surfaces a transient message.
	ShowMessage(msg string, level MessageLevel)

	// ConfigureKey marks exactly the given actions as enabled.
	ConfigureKey(enabled []domain.ActionName)
}
