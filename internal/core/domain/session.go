package domain

// Operation identifies the store operation behind a completion.
type Operation string

// Store operations.
const (
	OperationLoad Operation = "load"
	OperationSave Operation = "save"
)

// Completion is the outcome of a single-shot store request.
// Generation identifies the document that issued the request; a session
// only applies completions whose generation is still active.
type Completion struct {
	Generation uint64
	Operation  Operation
	Payload    *Payload
	Err        error
}

// SessionState is a snapshot of the session for presentation.
type SessionState struct {
	// Generation identifies the active document instance.
	Generation uint64

	// Key is the active document's key, empty until locked.
	Key string

	// Saved reports whether the active document is locked.
	Saved bool

	// Title is the current window title.
	Title string

	// Path is the current location ("/" for a new document).
	Path string

	// ContentType is the active document's syntax type.
	ContentType string

	// Enabled lists the actions that may be invoked.
	Enabled []ActionName

	// Busy reports a request issued for the active document that has not
	// been completed yet.
	Busy bool
}

// IsEnabled reports whether an action is in the enabled set.
func (s SessionState) IsEnabled(name ActionName) bool {
	for _, a := range s.Enabled {
		if a == name {
			return true
		}
	}
	return false
}
