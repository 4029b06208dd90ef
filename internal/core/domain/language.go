package domain

// Language maps a short extension alias to a canonical content type.
type Language struct {
	// Extension is the alias used in paths (e.g. "py").
	Extension string

	// Type is the canonical syntax type (e.g. "python").
	Type string
}

// Languages is the fixed alias table. Order matters: when several
// extensions share a type, reverse lookup returns the first declared one.
// Types that are their own extension (php, go, css...) are listed so the
// table documents every supported type, but lookups work without them.
var Languages = []Language{
	{"rb", "ruby"},
	{"py", "python"},
	{"pl", "perl"},
	{"php", "php"},
	{"scala", "scala"},
	{"go", "go"},
	{"xml", "xml"},
	{"html", "xml"},
	{"htm", "xml"},
	{"css", "css"},
	{"js", "javascript"},
	{"vbs", "vbscript"},
	{"lua", "lua"},
	{"pas", "delphi"},
	{"java", "java"},
	{"cpp", "cpp"},
	{"cc", "cpp"},
	{"m", "objectivec"},
	{"vala", "vala"},
	{"cs", "cs"},
	{"sql", "sql"},
	{"sm", "smalltalk"},
	{"lisp", "lisp"},
	{"ini", "ini"},
	{"diff", "diff"},
	{"bash", "bash"},
	{"sh", "bash"},
	{"tex", "tex"},
	{"erl", "erlang"},
	{"hs", "haskell"},
	{"md", "markdown"},
	{"txt", ""},
	{"coffee", "coffee"},
	{"json", "javascript"},
	{"v", "coq"},
}

// typeByExtension is the dense forward index over Languages.
var typeByExtension = func() map[string]string {
	m := make(map[string]string, len(Languages))
	for _, l := range Languages {
		if _, ok := m[l.Extension]; !ok {
			m[l.Extension] = l.Type
		}
	}
	return m
}()

// LookupTypeByExtension returns the content type for an extension.
// Unknown extensions, and aliases mapped to the empty type, return the
// extension itself so it can be tried as a type.
func LookupTypeByExtension(ext string) string {
	if t := typeByExtension[ext]; t != "" {
		return t
	}
	return ext
}

// LookupExtensionByType returns the preferred extension for a type.
// If no alias exists the type is returned unchanged.
func LookupExtensionByType(contentType string) string {
	for _, l := range Languages {
		if l.Type == contentType {
			return l.Extension
		}
	}
	return contentType
}
