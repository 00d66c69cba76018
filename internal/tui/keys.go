package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up            key.Binding
	down          key.Binding
	enter         key.Binding
	esc           key.Binding
	tab           key.Binding
	backtab       key.Binding
	copy          key.Binding
	export        key.Binding
	notifications key.Binding
	assistant     key.Binding
	security      key.Binding
	profile       key.Binding
	language      key.Binding
	signOut       key.Binding
	markAll       key.Binding
	delete        key.Binding
	filter        key.Binding
	importFile    key.Binding
	clear         key.Binding
}

var keys = keyMap{
	up:            key.NewBinding(key.WithKeys("up", "k")),
	down:          key.NewBinding(key.WithKeys("down", "j")),
	enter:         key.NewBinding(key.WithKeys("enter")),
	esc:           key.NewBinding(key.WithKeys("esc")),
	tab:           key.NewBinding(key.WithKeys("tab")),
	backtab:       key.NewBinding(key.WithKeys("shift+tab")),
	copy:          key.NewBinding(key.WithKeys("c")),
	export:        key.NewBinding(key.WithKeys("x")),
	notifications: key.NewBinding(key.WithKeys("n")),
	assistant:     key.NewBinding(key.WithKeys("a")),
	security:      key.NewBinding(key.WithKeys("s")),
	profile:       key.NewBinding(key.WithKeys("p")),
	language:      key.NewBinding(key.WithKeys("g")),
	signOut:       key.NewBinding(key.WithKeys("o")),
	markAll:       key.NewBinding(key.WithKeys("m")),
	delete:        key.NewBinding(key.WithKeys("d")),
	filter:        key.NewBinding(key.WithKeys("f")),
	importFile:    key.NewBinding(key.WithKeys("i")),
	clear:         key.NewBinding(key.WithKeys("ctrl+l")),
}
