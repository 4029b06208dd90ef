package domain

import "strings"

// Payload is the result of a successful load or save.
// It carries everything the session needs to present a locked document.
type Payload struct {
	// Content is the document text as stored.
	Content string

	// Key is the store-assigned identifier.
	Key string

	// ContentType is the syntax type of the document (e.g. "python").
	// The store is single-typed, so this is the session's configured type
	// rather than anything derived from a path extension.
	ContentType string
}

// RawKey is a document reference as typed by a user or found in a path,
// optionally carrying an extension ("abc123.py").
type RawKey struct {
	// Key is the store key.
	Key string

	// Extension is the optional alias after the first dot.
	Extension string
}

// ParseRawKey splits a raw reference on the first dot only.
// Anything after a second dot is discarded: "a.b.c" yields key "a" and
// extension "b". A leading slash is ignored so paths can be passed as-is.
func ParseRawKey(raw string) RawKey {
	raw = strings.TrimPrefix(raw, "/")
	parts := strings.SplitN(raw, ".", 3)

	rk := RawKey{Key: parts[0]}
	if len(parts) > 1 {
		rk.Extension = parts[1]
	}
	return rk
}

// DocumentPath composes the display path for a locked document.
// The extension is the preferred alias of contentType; an empty content
// type yields a bare "/key" path.
func DocumentPath(key, contentType string) string {
	path := "/" + key
	if contentType != "" {
		if ext := LookupExtensionByType(contentType); ext != "" {
			path += "." + ext
		}
	}
	return path
}

// RootPath is the location of a fresh, never-saved document.
const RootPath = "/"
