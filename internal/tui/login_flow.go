// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/propchat/propchat-client/internal/service"
)

type loginScreen int

const (
	screenWelcome loginScreen = iota
	screenLogin
	screenRegister
)

// loginFlowModel drives the pre-authentication screens. The program quits
// once a login succeeds; registration returns to the login form with the
// backend's message either way.
type loginFlowModel struct {
	ctx      context.Context
	services *service.Services

	currentScreen loginScreen
	welcome       welcomeModel
	login         loginModel
	register      registerModel
	styles        themeStyles

	err          error
	showError    bool
	errorOverlay errorOverlayModel
}

func newLoginFlowModel(ctx context.Context, services *service.Services) loginFlowModel {
	return loginFlowModel{
		ctx:           ctx,
		services:      services,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		styles:        stylesFor(themeDark),
	}
}

func (m loginFlowModel) Init() tea.Cmd {
	return nil
}

func (m loginFlowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
	case authDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		return m, tea.Quit
	case registerDoneMsg:
		m.register.submitting = false
		m.showErrorf(msg.result.Message)
		if msg.result.Success {
			m.register = newRegisterModel()
			m.currentScreen = screenLogin
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	}

	return m, nil
}

func (m loginFlowModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.render(m.styles)
	case screenLogin:
		body = m.login.render(m.styles)
	case screenRegister:
		body = m.register.render(m.styles)
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.render(m.styles)
	}

	return m.styles.app.Render(body)
}

func (m *loginFlowModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m loginFlowModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	}
	return m, nil
}

func (m loginFlowModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			identifier := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			if identifier == "" || password == "" {
				m.showErrorf("Username and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(identifier, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m loginFlowModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusPrevRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			username := strings.TrimSpace(m.register.inputs[0].Value())
			email := strings.TrimSpace(m.register.inputs[1].Value())
			password := m.register.inputs[2].Value()
			repeat := m.register.inputs[3].Value()
			if username == "" || email == "" || password == "" {
				m.showErrorf("Username, email and password are required")
				return m, nil
			}
			if password != repeat {
				m.showErrorf("Passwords do not match")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(username, email, password)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m loginFlowModel) cmdLogin(identifier, password string) tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		return authDoneMsg{err: session.Login(ctx, identifier, password)}
	}
}

func (m loginFlowModel) cmdRegister(username, email, password string) tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		return registerDoneMsg{result: session.Register(ctx, username, email, password)}
	}
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
