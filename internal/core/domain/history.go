package domain

import "time"

// HistoryEntry is one location pushed to history.
type HistoryEntry struct {
	// ID is the row identifier assigned by the history store.
	ID int64

	// Path is the location ("/", "/abc123", "/abc123.py").
	Path string

	// Title is the window title at the time of the push.
	Title string

	// Key is the document key, empty for a new document.
	Key string

	// Event is what produced the entry ("new", "lock", "load").
	Event string

	// CreatedAt is when the entry was recorded.
	CreatedAt time.Time
}

// History event kinds.
const (
	HistoryEventNew  = "new"
	HistoryEventLock = "lock"
	HistoryEventLoad = "load"
)
