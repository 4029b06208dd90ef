package driven

// Editor is the text-editing widget showing the active document.
// It is owned by the presentation layer; the session only drives it.
type Editor interface {
	// Value returns the current text.
	Value() string

	// SetValue replaces the text.
	SetValue(value string)

	// Focus gives the editor input focus.
	Focus()

	// Reset clears any editor-local state (undo history, cursor).
	Reset()
}
