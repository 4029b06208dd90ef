package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/haste-cli/internal/core/domain"
)

// defaultHistoryLimit bounds list_history when no limit is given.
const defaultHistoryLimit = 20

// LoadInput is the input schema for the load_paste tool.
type LoadInput struct {
	Key string `json:"key" jsonschema:"the paste key, optionally with an extension (abc123 or abc123.py)"`
}

// SaveInput is the input schema for the save_paste tool.
type SaveInput struct {
	Content string `json:"content" jsonschema:"the text to publish; pastes are immutable once saved"`
}

// PasteOutput describes a locked paste.
type PasteOutput struct {
	Key         string `json:"key"`
	Path        string `json:"path"`
	URL         string `json:"url"`
	RawURL      string `json:"raw_url"`
	ContentType string `json:"content_type,omitempty"`
	Content     string `json:"content,omitempty"`
}

// ParsePathInput is the input schema for the parse_path tool.
type ParsePathInput struct {
	Path string `json:"path" jsonschema:"a document path such as /abc123.py"`
}

// ParsePathOutput is the output schema for the parse_path tool.
type ParsePathOutput struct {
	Key         string `json:"key"`
	Extension   string `json:"extension,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

// HistoryInput is the input schema for the list_history tool.
type HistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of entries to return (default 20)"`
}

// HistoryOutput is the output schema for the list_history tool.
type HistoryOutput struct {
	Entries []HistoryEntryOutput `json:"entries"`
	Count   int                  `json:"count"`
}

// HistoryEntryOutput is one recorded location.
type HistoryEntryOutput struct {
	Path      string `json:"path"`
	Key       string `json:"key,omitempty"`
	Event     string `json:"event"`
	CreatedAt string `json:"created_at"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "load_paste",
		Description: "Fetch a paste by key",
	}, s.handleLoad)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save_paste",
		Description: "Publish text as a new paste and return its URL",
	}, s.handleSave)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_path",
		Description: "Split a paste path into key, extension and syntax type",
	}, s.handleParsePath)

	if s.ports.History != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_history",
			Description: "List recently visited and published pastes, newest first",
		}, s.handleHistory)
	}
}

func (s *Server) handleLoad(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LoadInput,
) (*mcp.CallToolResult, PasteOutput, error) {
	if input.Key == "" {
		return nil, PasteOutput{}, fmt.Errorf("key: %w", domain.ErrInvalidInput)
	}

	session := s.ports.Sessions()
	payload, err := session.LoadDocument(ctx, input.Key)
	if err != nil {
		return nil, PasteOutput{}, fmt.Errorf("loading %s: %w", input.Key, err)
	}

	out := s.pasteOutput(session.State().Path, payload)
	out.Content = payload.Content
	return nil, out, nil
}

func (s *Server) handleSave(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SaveInput,
) (*mcp.CallToolResult, PasteOutput, error) {
	session := s.ports.Sessions()
	session.Editor().SetValue(input.Content)

	payload, err := session.LockDocument(ctx)
	if err != nil {
		return nil, PasteOutput{}, fmt.Errorf("saving paste: %w", err)
	}
	return nil, s.pasteOutput(session.State().Path, payload), nil
}

func (s *Server) handleParsePath(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ParsePathInput,
) (*mcp.CallToolResult, ParsePathOutput, error) {
	rk := domain.ParseRawKey(input.Path)
	if rk.Key == "" {
		return nil, ParsePathOutput{}, fmt.Errorf("path %q has no key: %w", input.Path, domain.ErrInvalidInput)
	}

	out := ParsePathOutput{Key: rk.Key, Extension: rk.Extension}
	if rk.Extension != "" {
		out.ContentType = domain.LookupTypeByExtension(rk.Extension)
	}
	return nil, out, nil
}

func (s *Server) handleHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries, err := s.ports.History.List(ctx, limit)
	if err != nil {
		return nil, HistoryOutput{}, fmt.Errorf("listing history: %w", err)
	}

	out := HistoryOutput{
		Entries: make([]HistoryEntryOutput, len(entries)),
		Count:   len(entries),
	}
	for i, e := range entries {
		out.Entries[i] = HistoryEntryOutput{
			Path:      e.Path,
			Key:       e.Key,
			Event:     e.Event,
			CreatedAt: e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
	}
	return nil, out, nil
}

func (s *Server) pasteOutput(path string, p *domain.Payload) PasteOutput {
	settings := s.ports.settings()
	return PasteOutput{
		Key:         p.Key,
		Path:        path,
		URL:         settings.DocumentURL(path),
		RawURL:      settings.DocumentURL("/raw/" + p.Key),
		ContentType: p.ContentType,
	}
}
