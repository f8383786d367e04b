// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/propchat/propchat-client/internal/service"
	"github.com/propchat/propchat-client/internal/store"
	"github.com/propchat/propchat-client/models"
)

type mainScreen int

const (
	screenChat mainScreen = iota
	screenProperties
	screenLicence
)

// mainModel drives the authenticated part of the app: the chat transcript,
// the parsed listings, and the licence-key prompt.
type mainModel struct {
	ctx      context.Context
	services *service.Services
	kv       store.KVStore

	currentScreen mainScreen
	transcript    viewport.Model
	prompt        textinput.Model
	spin          spinner.Model
	licenceInput  textinput.Model
	propertyIdx   int

	theme  string
	styles themeStyles

	sending   bool
	resetting bool
	status    string

	showError    bool
	errorOverlay errorOverlayModel

	logout bool
	ready  bool
}

func newMainModel(ctx context.Context, services *service.Services, kv store.KVStore) mainModel {
	prompt := textinput.New()
	prompt.Placeholder = "Ask about a property..."
	prompt.CharLimit = 1024
	prompt.Width = 60
	prompt.Focus()

	licenceInput := textinput.New()
	licenceInput.Placeholder = "licence key"
	licenceInput.CharLimit = 64
	licenceInput.Width = 50

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	theme := loadTheme(ctx, kv)

	m := mainModel{
		ctx:          ctx,
		services:     services,
		kv:           kv,
		prompt:       prompt,
		licenceInput: licenceInput,
		spin:         spin,
		theme:        theme,
		styles:       stylesFor(theme),
	}

	// The licence gate is fail-open: an empty loaded key re-prompts here.
	if services.Licence.Loaded() && services.Licence.Key() == "" {
		m.currentScreen = screenLicence
		m.licenceInput.Focus()
		m.prompt.Blur()
	}

	return m
}

// loadTheme reads the persisted theme preference, defaulting to dark.
func loadTheme(ctx context.Context, kv store.KVStore) string {
	theme, err := kv.Get(ctx, "theme")
	if err != nil || (theme != themeDark && theme != themeLight) {
		return themeDark
	}
	return theme
}

func (m mainModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick)
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 4
		footerHeight := 5
		if !m.ready {
			m.transcript = viewport.New(msg.Width-4, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.transcript.Width = msg.Width - 4
			m.transcript.Height = msg.Height - headerHeight - footerHeight
		}
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}

	case promptDoneMsg:
		m.sending = false
		if msg.err != nil {
			// Only validation errors cross this boundary.
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.refreshTranscript()
		m.transcript.GotoBottom()
		return m, nil

	case resetDoneMsg:
		m.resetting = false
		if msg.err != nil {
			m.showErrorf(fmt.Sprintf("Could not reset the chat: %v", msg.err))
			return m, nil
		}
		m.refreshTranscript()
		m.propertyIdx = 0
		return m, nil

	case licenceSavedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrInvalidLicenceKey) {
				m.showErrorf("The licence key must be 43 characters of letters, digits, '-' or '_'.")
			} else {
				m.showErrorf(msg.err.Error())
			}
			return m, nil
		}
		m.currentScreen = screenChat
		m.licenceInput.SetValue("")
		m.licenceInput.Blur()
		m.prompt.Focus()
		return m, nil

	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if m.sending || m.resetting {
			// Repaint while waiting so the optimistic user turn is
			// visible before the reply arrives.
			m.refreshTranscript()
			m.transcript.GotoBottom()
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenChat:
		return m.updateChat(msg)
	case screenProperties:
		return m.updateProperties(msg)
	case screenLicence:
		return m.updateLicence(msg)
	}

	return m, nil
}

func (m mainModel) View() string {
	var body string
	switch m.currentScreen {
	case screenChat:
		body = m.chatView()
	case screenProperties:
		body = m.propertiesView()
	case screenLicence:
		body = m.licenceView()
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.render(m.styles)
	}

	return m.styles.app.Render(body)
}

// ── chat screen ──────────────────────────────────────────────────────────────

func (m mainModel) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.logout):
			m.logout = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.properties):
			m.currentScreen = screenProperties
			m.propertyIdx = 0
			return m, nil
		case key.Matches(keyMsg, keys.licence):
			m.currentScreen = screenLicence
			m.licenceInput.Focus()
			m.prompt.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.theme):
			return m.toggleTheme()
		case key.Matches(keyMsg, keys.reset):
			if m.resetting || m.sending {
				return m, nil
			}
			m.resetting = true
			return m, tea.Batch(m.spin.Tick, m.cmdReset())
		case key.Matches(keyMsg, keys.up):
			m.transcript.ScrollUp(1)
			return m, nil
		case key.Matches(keyMsg, keys.down):
			m.transcript.ScrollDown(1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.sending {
				return m, nil
			}
			text := m.prompt.Value()
			if strings.TrimSpace(text) == "" {
				return m, nil
			}
			m.prompt.SetValue("")
			m.sending = true
			return m, tea.Batch(m.spin.Tick, m.cmdSendPrompt(text))
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m mainModel) chatView() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("PropChat"))
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(m.styles.status.Render(m.status))
	}
	b.WriteString("\n\n")

	if m.ready {
		b.WriteString(m.transcript.View())
	} else {
		b.WriteString(m.renderTranscript())
	}
	b.WriteString("\n\n")

	if m.sending {
		b.WriteString(m.spin.View())
		b.WriteString(" thinking...\n")
	} else if m.resetting {
		b.WriteString(m.spin.View())
		b.WriteString(" resetting...\n")
	} else {
		b.WriteString("> ")
		b.WriteString(m.prompt.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("enter: send │ ctrl+p: listings │ ctrl+r: reset │ ctrl+k: licence │ ctrl+t: theme │ ctrl+l: logout │ ctrl+c: quit"))
	return b.String()
}

func (m *mainModel) refreshTranscript() {
	if m.ready {
		m.transcript.SetContent(m.renderTranscript())
	}
}

func (m mainModel) renderTranscript() string {
	messages := m.services.Conversation.Messages()
	if len(messages) == 0 {
		return m.styles.help.Render("No messages yet. Ask about a property to get started.")
	}

	var b strings.Builder
	for _, message := range messages {
		if message.Role == models.RoleUser {
			b.WriteString(m.styles.userMsg.Render("You: "))
		} else {
			b.WriteString(m.styles.highlight.Render("Assistant: "))
		}
		b.WriteString(m.styles.botMsg.Render(message.Content))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// ── properties screen ────────────────────────────────────────────────────────

func (m mainModel) updateProperties(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	properties := m.services.Conversation.Properties()

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenChat
	case key.Matches(keyMsg, keys.up):
		if m.propertyIdx > 0 {
			m.propertyIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.propertyIdx < len(properties)-1 {
			m.propertyIdx++
		}
	case key.Matches(keyMsg, keys.copy):
		if m.propertyIdx < len(properties) && properties[m.propertyIdx].SourceURL != "" {
			return m, cmdCopyToClipboard(properties[m.propertyIdx].SourceURL)
		}
	}
	return m, nil
}

func (m mainModel) propertiesView() string {
	properties := m.services.Conversation.Properties()

	var b strings.Builder
	b.WriteString(m.styles.title.Render("Listings"))
	b.WriteString("\n\n")

	if len(properties) == 0 {
		b.WriteString(m.styles.help.Render("No listings yet. The assistant attaches them to its replies."))
	}

	for i, property := range properties {
		cursor := "  "
		if i == m.propertyIdx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(m.styles.highlight.Render(property.Name))
		b.WriteString(fmt.Sprintf(" — %s %s, %s\n", property.Price, property.Currency, property.Location))

		if i == m.propertyIdx {
			b.WriteString(fmt.Sprintf("    %s bd │ %s ba │ %s m² │ %s\n", property.Bedrooms, property.Bathrooms, property.AreaM2, property.Kind))
			if len(property.BrokerContacts()) > 0 {
				b.WriteString("    ")
				b.WriteString(property.BrokerName)
				b.WriteString(": ")
				b.WriteString(strings.Join(property.BrokerContacts(), ", "))
				b.WriteString("\n")
			}
			if property.SourceURL != "" {
				b.WriteString("    ")
				b.WriteString(m.styles.help.Render(property.SourceURL))
				b.WriteString("\n")
			}
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.status.Render(m.status))
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.help.Render("↑/↓: select │ c: copy link │ esc: back"))
	return b.String()
}

// ── licence screen ───────────────────────────────────────────────────────────

func (m mainModel) updateLicence(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenChat
			m.licenceInput.Blur()
			m.prompt.Focus()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			licenceKey := strings.TrimSpace(m.licenceInput.Value())
			return m, m.cmdSaveLicence(licenceKey)
		}
	}

	var cmd tea.Cmd
	m.licenceInput, cmd = m.licenceInput.Update(msg)
	return m, cmd
}

func (m mainModel) licenceView() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Licence key"))
	b.WriteString("\n\n")

	current := m.services.Licence.Key()
	if current != "" {
		b.WriteString("Current key: ")
		b.WriteString(m.styles.highlight.Render(current))
		b.WriteString("\n\n")
	} else {
		b.WriteString("A licence key is required to use the assistant.\n\n")
	}

	b.WriteString("Key │ [")
	b.WriteString(m.licenceInput.View())
	b.WriteString("]\n\n")
	b.WriteString(m.styles.help.Render("enter: save │ esc: back"))
	return b.String()
}

// ── theme / commands ─────────────────────────────────────────────────────────

func (m mainModel) toggleTheme() (tea.Model, tea.Cmd) {
	if m.theme == themeDark {
		m.theme = themeLight
	} else {
		m.theme = themeDark
	}
	m.styles = stylesFor(m.theme)
	m.refreshTranscript()

	ctx := m.ctx
	kv := m.kv
	theme := m.theme
	return m, func() tea.Msg {
		// Last-writer-wins is fine for a cosmetic preference.
		_ = kv.Set(ctx, "theme", theme)
		return nil
	}
}

func (m mainModel) cmdSendPrompt(text string) tea.Cmd {
	ctx := m.ctx
	conversation := m.services.Conversation
	return func() tea.Msg {
		_, err := conversation.SendPrompt(ctx, text)
		return promptDoneMsg{err: err}
	}
}

func (m mainModel) cmdReset() tea.Cmd {
	ctx := m.ctx
	conversation := m.services.Conversation
	return func() tea.Msg {
		return resetDoneMsg{err: conversation.Reset(ctx)}
	}
}

func (m mainModel) cmdSaveLicence(licenceKey string) tea.Cmd {
	ctx := m.ctx
	licence := m.services.Licence
	return func() tea.Msg {
		return licenceSavedMsg{err: licence.Set(ctx, licenceKey)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m *mainModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}
