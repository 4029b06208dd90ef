package mcp

import (
	"testing"

	"github.com/jonboulle/clockwork"

	"github.com/custodia-labs/haste-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/haste-cli/internal/core/domain"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driving"
	"github.com/custodia-labs/haste-cli/internal/core/services"
)

// testPorts wires real sessions to in-memory adapters.
type testPorts struct {
	store   *memory.DocumentStore
	history *memory.History
	ports   *Ports
}

func newTestPorts(t *testing.T, docs map[string]string) *testPorts {
	t.Helper()

	tp := &testPorts{
		store: memory.NewDocumentStore(
			memory.WithDocuments(docs),
			memory.WithKeyGenerator(func() string { return "abc123" }),
		),
		history: memory.NewHistory(clockwork.NewFakeClock()),
	}
	settings := services.NewSettingsService(memory.NewConfigStore(map[string]any{
		"server.url":            "https://paste.example",
		"document.content_type": "python",
	}))
	tp.ports = &Ports{
		Sessions: func() driving.SessionController {
			s, err := settings.Get()
			if err != nil {
				t.Fatalf("settings: %v", err)
			}
			return services.NewSession(tp.store, *s,
				services.WithHistory(tp.history),
			)
		},
		Settings: settings,
		History:  services.NewHistoryService(tp.history),
	}
	return tp
}

func (tp *testPorts) server(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(tp.ports)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

// failingSettings always fails Get.
type failingSettings struct {
	driving.SettingsService
}

func (failingSettings) Get() (*domain.AppSettings, error) {
	return nil, domain.ErrInvalidInput
}

