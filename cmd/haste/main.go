// Command haste is a terminal client for hastebin-style paste servers.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/haste-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/haste-cli/internal/adapters/driven/opener"
	"github.com/custodia-labs/haste-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/haste-cli/internal/adapters/driven/store/httpstore"
	"github.com/custodia-labs/haste-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driven"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driving"
	"github.com/custodia-labs/haste-cli/internal/core/services"
	"github.com/custodia-labs/haste-cli/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dir, err := file.DefaultDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "haste: locating home directory: %v\n", err)
		return 1
	}

	configStore, err := file.NewConfigStore(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "haste: %v\n", err)
		return 1
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("invalid settings in %s, using defaults: %v", configStore.Path(), err)
		defaults := settingsService.GetDefaults()
		settings = &defaults
	}

	store := httpstore.New(httpstore.ConfigFromSettings(settings.Server))
	sys := opener.New()

	var history driven.History
	var historyService driving.HistoryService
	if settings.History.Enabled {
		db, err := sqlite.NewStore(dir)
		if err != nil {
			logger.Warn("history disabled: %v", err)
		} else {
			defer db.Close()
			history = db.History()
			historyService = services.NewHistoryService(history)
		}
	}

	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		Sessions: func(editor driven.Editor, presenter driven.Presenter) (driving.SessionController, driving.ActionService) {
			current, err := settingsService.Get()
			if err != nil {
				current = settings
			}
			session := services.NewSession(store, *current,
				services.WithEditor(editor),
				services.WithPresenter(presenter),
				services.WithHistory(history),
				services.WithOpener(sys),
				services.WithContext(ctx),
			)
			return session, services.NewActionService(session)
		},
		Settings:    settingsService,
		History:     historyService,
		Opener:      sys,
		ConfigPath:  configStore.Path(),
		WatchConfig: configStore.Watch,
	})

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
