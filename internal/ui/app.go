package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Atharvmulik/taskkeeper/internal/taskkeeper"
	"github.com/Atharvmulik/taskkeeper/internal/ui/views"
)

// Currently active view
type View int

const (
	ViewTasks View = iota
	ViewNotifications
)

// listChangedMsg is delivered whenever the task list or its reminders change
type listChangedMsg struct{}

type App struct {
	list          *taskkeeper.TaskList
	scanner       *taskkeeper.Scanner
	changes       <-chan struct{}
	currentView   View
	taskList      *views.TaskListView
	notifications *views.NotificationsView
	width         int
	height        int
}

// Creates a new application. settings may be nil to run without persistence.
func NewApp(list *taskkeeper.TaskList, scanner *taskkeeper.Scanner, settings views.FormSettings, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		list:          list,
		scanner:       scanner,
		changes:       list.Subscribe(),
		currentView:   ViewTasks,
		taskList:      views.NewTaskListView(list, settings, logger),
		notifications: views.NewNotificationsView(list),
	}
}

func (a *App) Init() tea.Cmd {
	if a.scanner != nil {
		a.scanner.Start(context.Background())
	}
	return tea.Batch(a.taskList.Init(), a.waitForChange)
}

// Shutdown stops background work. Safe to call more than once.
func (a *App) Shutdown() {
	if a.scanner != nil {
		a.scanner.Stop()
	}
}

// waitForChange blocks until the next change signal; the result re-renders the screen
func (a *App) waitForChange() tea.Msg {
	<-a.changes
	return listChangedMsg{}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Both views keep their size across switches
		a.notifications.Update(msg)
		_, cmd := a.taskList.Update(msg)
		return a, cmd

	case listChangedMsg:
		a.taskList.Update(views.ListChanged{})
		return a, a.waitForChange

	case views.ShowNotifications:
		a.currentView = ViewNotifications
		return a, nil

	case views.CloseNotifications:
		a.currentView = ViewTasks
		return a, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		switch a.currentView {
		case ViewNotifications:
			_, cmd = a.notifications.Update(msg)
		default:
			_, cmd = a.taskList.Update(msg)
		}
		return a, cmd
	}

	// Async results always belong to the task view
	_, cmd := a.taskList.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	if a.currentView == ViewNotifications {
		return a.notifications.View()
	}
	return a.taskList.View()
}
