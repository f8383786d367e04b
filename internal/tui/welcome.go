package tui

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Sign in", "Create an account"}}
}

func (m welcomeModel) render(styles themeStyles) string {
	out := styles.title.Render("PropChat") + "\n\nWhat would you like to do?\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	out += "\n" + styles.help.Render("ctrl+c quit")
	return out
}
