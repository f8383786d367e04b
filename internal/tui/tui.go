// Package tui implements the terminal user interface: the login flow
// (welcome, login, register) and the main chat loop with listing and
// licence screens.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/propchat/propchat-client/internal/logger"
	"github.com/propchat/propchat-client/internal/service"
	"github.com/propchat/propchat-client/internal/store"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.Services
	kv       store.KVStore
	logger   *logger.Logger
}

func New(services *service.Services, kv store.KVStore, log *logger.Logger) (*TUI, error) {
	return &TUI{services: services, kv: kv, logger: log}, nil
}

// LoginFlow runs the welcome/login/register screens and blocks until the
// session is authenticated or the user quits.
func (t *TUI) LoginFlow(ctx context.Context) error {
	model := newLoginFlowModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(loginFlowModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil {
		return result.err
	}
	return nil
}

// MainLoop runs the chat screen until the user quits or logs out. It
// reports logout so the caller can re-enter the login flow.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainModel(ctx, t.services, t.kv)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
