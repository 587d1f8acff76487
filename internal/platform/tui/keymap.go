package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings shown in the simulation footer.
// The bindings only document keys; interpretation belongs to the simulation.
type KeyMap struct {
	SpeedUp   key.Binding
	SlowDown  key.Binding
	Quit      key.Binding
	Interrupt key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SpeedUp, k.SlowDown, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SpeedUp, k.SlowDown},
		{k.Quit, k.Interrupt},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		SpeedUp: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "faster"),
		),
		SlowDown: key.NewBinding(
			key.WithKeys("z", "Z"),
			key.WithHelp("z", "slower"),
		),
		Quit: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "quit"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
	}
}

// keyRunes translates a key message into the characters a terminal would
// deliver for it. Pasted or coalesced input yields several runes; keys with
// no character yield none.
func keyRunes(msg tea.KeyMsg) []rune {
	switch msg.Type {
	case tea.KeySpace:
		return []rune{' '}
	case tea.KeyRunes:
		return msg.Runes
	}
	return nil
}
