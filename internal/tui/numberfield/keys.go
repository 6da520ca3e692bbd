package numberfield

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds the step keys. Every other key goes to the text box.
type KeyMap struct {
	Increment key.Binding
	Decrement key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Increment: key.NewBinding(
			key.WithKeys("up", "ctrl+k"),
			key.WithHelp("↑", "increase"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("down", "ctrl+j"),
			key.WithHelp("↓", "decrease"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Decrement}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
