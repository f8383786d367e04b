package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	logout     key.Binding
	reset      key.Binding
	properties key.Binding
	licence    key.Binding
	theme      key.Binding
	copy       key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("ctrl+c")),
	logout:     key.NewBinding(key.WithKeys("ctrl+l")),
	reset:      key.NewBinding(key.WithKeys("ctrl+r")),
	properties: key.NewBinding(key.WithKeys("ctrl+p")),
	licence:    key.NewBinding(key.WithKeys("ctrl+k")),
	theme:      key.NewBinding(key.WithKeys("ctrl+t")),
	copy:       key.NewBinding(key.WithKeys("c")),
}
