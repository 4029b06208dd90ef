package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupTypeByExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{"py", "python"},
		{"rb", "ruby"},
		{"html", "xml"},
		{"htm", "xml"},
		{"json", "javascript"},
		{"sh", "bash"},
		{"v", "coq"},
		{"rust", "rust"}, // unknown extensions are tried as types
		{"txt", "txt"},   // empty mapping falls back to the extension
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.want, LookupTypeByExtension(tt.ext))
		})
	}
}

func TestLookupExtensionByType_FirstDeclaredWins(t *testing.T) {
	assert.Equal(t, "xml", LookupExtensionByType("xml"))
	assert.Equal(t, "js", LookupExtensionByType("javascript"))
	assert.Equal(t, "cpp", LookupExtensionByType("cpp"))
	assert.Equal(t, "bash", LookupExtensionByType("bash"))
}

func TestLookupExtensionByType_UnknownIsIdentity(t *testing.T) {
	assert.Equal(t, "rust", LookupExtensionByType("rust"))
}

func TestLanguages_UniqueExtensions(t *testing.T) {
	seen := make(map[string]bool)
	for _, l := range Languages {
		assert.False(t, seen[l.Extension], "duplicate extension %q", l.Extension)
		seen[l.Extension] = true
	}
}

func TestDocumentPath_RoundTrip(t *testing.T) {
	types := []string{"rust", "elixir"}
	for _, l := range Languages {
		types = append(types, l.Type)
	}

	for _, contentType := range types {
		path := DocumentPath("abc123", contentType)
		rk := ParseRawKey(path)

		assert.Equal(t, "abc123", rk.Key, "path %s", path)
		assert.Equal(t, contentType, LookupTypeByExtension(rk.Extension), "path %s", path)
	}
}
