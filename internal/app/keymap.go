package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the pager's keybindings.
type KeyMap struct {
	Quit          key.Binding
	Help          key.Binding
	Reload        key.Binding
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	HalfPageUp    key.Binding
	HalfPageDown  key.Binding
	Home          key.Binding
	End           key.Binding
	LineStart     key.Binding
	ToggleUnicode key.Binding
	Back          key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Reload:        key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "reload")),
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/↑", "up")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/↓", "down")),
		Left:          key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/←", "left")),
		Right:         key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("l/→", "right")),
		PageUp:        key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown:      key.NewBinding(key.WithKeys("pgdown", " ", "f"), key.WithHelp("pgdn", "page down")),
		HalfPageUp:    key.NewBinding(key.WithKeys("ctrl+u", "u"), key.WithHelp("ctrl+u", "half page up")),
		HalfPageDown:  key.NewBinding(key.WithKeys("ctrl+d", "d"), key.WithHelp("ctrl+d", "half page down")),
		Home:          key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:           key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		LineStart:     key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "first column")),
		ToggleUnicode: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "ascii/unicode bars")),
		Back:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}
