package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) render(styles themeStyles) string {
	content := "Error\n\n" + m.message + "\n\nenter / esc to close"
	return styles.overlay.Render(content)
}
