package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	Next      key.Binding
	Back      key.Binding
	Skip      key.Binding
	Submit    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("enter", "right", "l", "n"),
			key.WithHelp("Enter/→", "next"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "h", "b"),
			key.WithHelp("←/b", "back"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip intro"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "save and continue"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/Esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Back, k.Skip, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Back, k.Skip},
		{k.Submit, k.Quit, k.ForceQuit},
	}
}

// usernameKeys is the help shown while typing, where letters are input.
type usernameKeys struct{ KeyMap }

func (k usernameKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "quit"))}
}

func (k usernameKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
