package domain

// ActionName identifies a user-invocable session action.
type ActionName string

// Session actions, in display order.
const (
	ActionSave      ActionName = "save"
	ActionNew       ActionName = "new"
	ActionDuplicate ActionName = "duplicate"
	ActionRaw       ActionName = "raw"
	ActionTwitter   ActionName = "twitter"
)

// String returns the string representation.
func (a ActionName) String() string {
	return string(a)
}

// LightKey is the action set of an editable document.
func LightKey() []ActionName {
	return []ActionName{ActionNew, ActionSave}
}

// FullKey is the action set of a locked document.
func FullKey() []ActionName {
	return []ActionName{ActionNew, ActionDuplicate, ActionTwitter, ActionRaw}
}

// AllActions returns every action in display order.
func AllActions() []ActionName {
	return []ActionName{ActionSave, ActionNew, ActionDuplicate, ActionRaw, ActionTwitter}
}
