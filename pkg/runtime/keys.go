package runtime

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings the terminal model handles itself instead of
// forwarding to the focused component.
type KeyMap struct {
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

// DefaultKeyMap cycles focus with tab and shift+tab and quits on ctrl+c.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
