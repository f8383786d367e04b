package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	identifier := textinput.New()
	identifier.Placeholder = "username or email"
	identifier.CharLimit = 64
	identifier.Width = 40
	identifier.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{identifier, password}}
}

func (m loginModel) render(styles themeStyles) string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Sign in"))
	b.WriteString("\n\n")
	b.WriteString("Identifier │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password   │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.help.Render("esc: back │ tab: next field │ enter: submit"))
	return b.String()
}
