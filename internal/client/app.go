package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/propchat/propchat-client/internal/config"
	"github.com/propchat/propchat-client/internal/logger"
	"github.com/propchat/propchat-client/internal/service"
	"github.com/propchat/propchat-client/internal/tui"
	"github.com/propchat/propchat-client/internal/workers"
)

type App struct {
	services *service.Services
	ui       *tui.TUI
	workers  config.Workers
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, workersCfg config.Workers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}
	return &App{services: services, ui: ui, workers: workersCfg, logger: log}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	a.services.Session.Initialize(ctx)

	if a.services.Session.State() != service.AuthStateAuthenticated {
		if err := a.ui.LoginFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}
	}

	a.services.Licence.Fetch(ctx)

	// Show the cached transcript immediately, then reconcile with the
	// backend; a failed load still leaves the app usable.
	a.services.Conversation.PreloadCache(ctx)
	if err := a.services.Conversation.LoadHistory(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "history warning: %v\n", err)
	}

	refresh := workers.NewRefreshWorker(a.services.Session, a.workers.RefreshInterval, a.logger)
	refresh.Start(ctx)
	defer refresh.Stop()

	logout, err := a.ui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if logout {
		a.services.Session.Logout(ctx)
		refresh.Stop()
		return a.Run()
	}

	return nil
}
