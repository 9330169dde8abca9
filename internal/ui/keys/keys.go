package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding used by the views
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Tab   key.Binding
	Back  key.Binding
	Quit  key.Binding

	Toggle        key.Binding
	Delete        key.Binding
	Reload        key.Binding
	Notifications key.Binding
	ClearNotifs   key.Binding
	DismissError  key.Binding
	Priority      key.Binding
	Category      key.Binding
	PrevDay       key.Binding
	NextDay       key.Binding
	PrevWeek      key.Binding
	NextWeek      key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "add"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "done"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Notifications: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "reminders"),
		),
		ClearNotifs: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear reminders"),
		),
		DismissError: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss error"),
		),
		Priority: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "priority"),
		),
		Category: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "category"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next day"),
		),
		PrevWeek: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", "prev week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", "next week"),
		),
	}
}
