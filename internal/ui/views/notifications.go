package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Atharvmulik/taskkeeper/internal/taskkeeper"
	"github.com/Atharvmulik/taskkeeper/internal/ui/keys"
	"github.com/Atharvmulik/taskkeeper/internal/ui/styles"
)

// CloseNotifications asks the app to return to the task screen
type CloseNotifications struct{}

// NotificationsView lists pending overdue reminders, newest first
type NotificationsView struct {
	list   *taskkeeper.TaskList
	styles *styles.Styles
	keys   keys.KeyMap
	width  int
	height int
}

// NewNotificationsView creates the reminders panel
func NewNotificationsView(list *taskkeeper.TaskList) *NotificationsView {
	return &NotificationsView{
		list:   list,
		styles: styles.NewStyles(),
		keys:   keys.DefaultKeyMap(),
	}
}

func (v *NotificationsView) Init() tea.Cmd {
	return nil
}

func (v *NotificationsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Notifications):
			return v, func() tea.Msg { return CloseNotifications{} }
		case key.Matches(msg, v.keys.ClearNotifs):
			v.list.DismissNotifications()
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		}
	}
	return v, nil
}

func (v *NotificationsView) View() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	notifications := v.list.Notifications()

	var b strings.Builder
	b.WriteString(s.Title.Render("Gentle Pushes 🔔"))
	b.WriteString("\n\n")

	if len(notifications) == 0 {
		b.WriteString(s.TitleMuted.Render("No new reminders. Stay awesome! 🌟"))
		b.WriteString("\n")
	}
	for _, n := range notifications {
		entry := lipgloss.JoinVertical(lipgloss.Left,
			n.Message,
			s.Quote.Render(n.Quote),
			s.TitleMuted.Render(n.Time.Format("Jan 2 15:04")),
		)
		b.WriteString(s.Panel.Width(max(contentWidth-4, 20)).Render(entry))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Help.Render(
		s.HelpKey.Render("esc") + " back • " +
			s.HelpKey.Render("c") + " clear all • " +
			s.HelpKey.Render("q") + " quit",
	))

	return styles.CenterView(b.String(), v.width, v.height)
}
