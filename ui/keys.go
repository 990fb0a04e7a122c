package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap covers app chrome only; directional navigation, select and back are
// owned by the nav dispatcher.
type keyMap struct {
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
