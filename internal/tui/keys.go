package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	history   key.Binding
	copy      key.Binding
	save      key.Binding
	reset     key.Binding
	preset    key.Binding
	sizeUp    key.Binding
	sizeDown  key.Binding
	delete    key.Binding
	copyItem  key.Binding
	reload    key.Binding
	buildInfo key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	history:   key.NewBinding(key.WithKeys("h")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	reset:     key.NewBinding(key.WithKeys("ctrl+r")),
	preset:    key.NewBinding(key.WithKeys("ctrl+p")),
	sizeUp:    key.NewBinding(key.WithKeys("pgup")),
	sizeDown:  key.NewBinding(key.WithKeys("pgdown")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copyItem:  key.NewBinding(key.WithKeys("c")),
	reload:    key.NewBinding(key.WithKeys("r")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
