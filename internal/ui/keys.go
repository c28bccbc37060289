package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap binds terminal keys to keypad buttons and navigation.
type keyMap struct {
	Digit      key.Binding
	Sign       key.Binding
	Point      key.Binding
	Enter      key.Binding
	ClearEntry key.Binding
	ClearAll   key.Binding
	Fold       key.Binding
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "digit"),
		),
		Sign: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "south/contrary"),
		),
		Point: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "decimal"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next field"),
		),
		ClearEntry: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("bksp", "CE"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("c", "C"),
			key.WithHelp("c", "clear all"),
		),
		Fold: key.NewBinding(
			key.WithKeys("d", "'", "°"),
			key.WithHelp("d", "fold minutes"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→", "deg/min"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", "LHA/Lat/Dec"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "select next"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Digit, k.Enter, k.ClearEntry, k.ClearAll, k.Fold, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digit, k.Sign, k.Point},
		{k.Enter, k.ClearEntry, k.ClearAll, k.Fold},
		{k.Left, k.Up, k.NextField},
		{k.Help, k.Quit},
	}
}
