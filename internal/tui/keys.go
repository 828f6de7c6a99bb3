package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Next key.Binding
	Quit key.Binding
}

// Quit is lowercase q only, with or without alt. ctrl+c arrives as a plain
// key in raw mode and is ignored like any other.
func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next screen"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) classify(msg tea.KeyMsg) Key {
	msg.Alt = false
	switch {
	case key.Matches(msg, k.Quit):
		return KeyQuit
	case key.Matches(msg, k.Next):
		return KeyEnter
	default:
		return KeyOther
	}
}

// splitRunes turns a batch of runes read in one go (fast typing, key repeat,
// an unbracketed or bracketed paste) into one key message per rune.
func splitRunes(msg tea.KeyMsg) []tea.KeyMsg {
	if msg.Type != tea.KeyRunes || (len(msg.Runes) <= 1 && !msg.Paste) {
		return []tea.KeyMsg{msg}
	}

	keys := make([]tea.KeyMsg, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		keys = append(keys, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt})
	}
	return keys
}
