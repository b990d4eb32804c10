package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	CycleTheme  key.Binding
	ToggleClock key.Binding
	Reset       key.Binding

	// Focus
	NextField key.Binding
	PrevField key.Binding

	// Adjust
	Increase    key.Binding
	Decrease    key.Binding
	IncreaseBig key.Binding
	DecreaseBig key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		ToggleClock: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "12h/24h clock"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reset inputs"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/l", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab/h", "Previous field"),
		),

		Increase: key.NewBinding(
			key.WithKeys("k", "up", "+"),
			key.WithHelp("k/up", "Increase"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("j", "down", "-"),
			key.WithHelp("j/down", "Decrease"),
		),
		IncreaseBig: key.NewBinding(
			key.WithKeys("pgup", "K"),
			key.WithHelp("pgup", "Increase a lot"),
		),
		DecreaseBig: key.NewBinding(
			key.WithKeys("pgdown", "J"),
			key.WithHelp("pgdown", "Decrease a lot"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Increase, k.Decrease, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField},
		{k.Increase, k.Decrease, k.IncreaseBig, k.DecreaseBig},
		{k.Reset, k.ToggleClock, k.CycleTheme, k.Help, k.Quit},
	}
}
