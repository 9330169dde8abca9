package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Atharvmulik/taskkeeper/internal/models"
	"github.com/Atharvmulik/taskkeeper/internal/taskkeeper"
	"github.com/Atharvmulik/taskkeeper/internal/ui/keys"
	"github.com/Atharvmulik/taskkeeper/internal/ui/styles"
)

const (
	quoteRotation   = 8 * time.Second
	celebrationTime = 3 * time.Second
	daysShown       = 3
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// FocusArea represents which part of the UI has focus
type FocusArea int

const (
	FocusInput FocusArea = iota
	FocusTaskList
)

// FormSettings remembers input form choices between runs
type FormSettings interface {
	FormDefaults() (models.Priority, models.Category)
	SaveFormDefaults(models.Priority, models.Category) error
}

// ShowNotifications asks the app to open the reminders panel
type ShowNotifications struct{}

// ListChanged tells the view the task list changed outside its own commands
type ListChanged struct{}

// TaskListView is the Task Keeper screen
type TaskListView struct {
	list     *taskkeeper.TaskList
	settings FormSettings
	logger   *zap.Logger
	styles   *styles.Styles
	keys     keys.KeyMap
	now      func() time.Time

	width  int
	height int

	// UI state
	focus   FocusArea
	cursor  int
	scrollY int
	loading bool
	adding  bool

	// Input row
	input     textinput.Model
	priority  models.Priority
	category  models.Category
	dayOffset int // 0 = today

	// Delete confirmation
	confirmingDelete bool
	deleteTargetID   int64
	deleteTargetName string

	// Celebration toast
	cheer    string
	cheerSeq int

	quoteIdx int
	bar      progress.Model
}

// NewTaskListView creates the task view. settings may be nil.
func NewTaskListView(list *taskkeeper.TaskList, settings FormSettings, logger *zap.Logger) *TaskListView {
	input := textinput.New()
	input.Placeholder = "I want to accomplish..."
	input.CharLimit = 200
	input.Focus()

	priority, category := models.PriorityMedium, models.CategoryStudy
	if settings != nil {
		priority, category = settings.FormDefaults()
	}

	bar := progress.New(progress.WithGradient(string(styles.Current.Primary), string(styles.Current.Success)))
	bar.ShowPercentage = true

	return &TaskListView{
		list:     list,
		settings: settings,
		logger:   logger,
		styles:   styles.NewStyles(),
		keys:     keys.DefaultKeyMap(),
		now:      time.Now,
		focus:    FocusInput,
		loading:  true,
		input:    input,
		priority: priority,
		category: category,
		bar:      bar,
	}
}

// Init loads the tasks and starts the quote rotation
func (v *TaskListView) Init() tea.Cmd {
	v.loading = true
	return tea.Batch(v.loadTasks, textinput.Blink, quoteTick())
}

type tasksLoadedMsg struct{ err error }

type taskCreatedMsg struct{ err error }

type taskToggledMsg struct {
	res taskkeeper.ToggleResult
	err error
}

type taskDeletedMsg struct{ err error }

type quoteTickMsg struct{}

type cheerDoneMsg struct{ seq int }

func quoteTick() tea.Cmd {
	return tea.Tick(quoteRotation, func(time.Time) tea.Msg { return quoteTickMsg{} })
}

func (v *TaskListView) loadTasks() tea.Msg {
	return tasksLoadedMsg{err: v.list.Load(context.Background())}
}

func (v *TaskListView) createTask(text string, priority models.Priority, category models.Category, due time.Time) tea.Cmd {
	return func() tea.Msg {
		_, err := v.list.Create(context.Background(), text, priority, category, due)
		return taskCreatedMsg{err: err}
	}
}

func (v *TaskListView) toggleTask(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := v.list.ToggleComplete(context.Background(), id)
		return taskToggledMsg{res: res, err: err}
	}
}

func (v *TaskListView) deleteTask(id int64) tea.Cmd {
	return func() tea.Msg {
		return taskDeletedMsg{err: v.list.Delete(context.Background(), id)}
	}
}

// Update handles messages
func (v *TaskListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(v.width)
		v.input.Width = clamp(contentWidth-30, 10, 50)
		v.bar.Width = clamp(contentWidth-30, 10, 40)
		return v, nil

	case ListChanged:
		v.clampCursor()
		return v, nil

	case tasksLoadedMsg:
		// A failed load already swapped in the sample set.
		v.loading = false
		v.clampCursor()
		return v, nil

	case taskCreatedMsg:
		v.adding = false
		if msg.err == nil {
			v.input.Reset()
			v.saveFormDefaults()
		}
		return v, nil

	case taskToggledMsg:
		if msg.err == nil && msg.res.Cheer != "" {
			v.cheer = msg.res.Cheer
			v.cheerSeq++
			seq := v.cheerSeq
			return v, tea.Tick(celebrationTime, func(time.Time) tea.Msg { return cheerDoneMsg{seq: seq} })
		}
		return v, nil

	case taskDeletedMsg:
		v.clampCursor()
		return v, nil

	case cheerDoneMsg:
		// Only the latest celebration hides the toast.
		if msg.seq == v.cheerSeq {
			v.cheer = ""
		}
		return v, nil

	case quoteTickMsg:
		v.quoteIdx = (v.quoteIdx + 1) % taskkeeper.MotivationalQuoteCount()
		return v, quoteTick()

	case tea.KeyMsg:
		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}
		if v.focus == FocusInput {
			return v.updateInput(msg)
		}
		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *TaskListView) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return v, tea.Quit

	case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Tab):
		v.input.Blur()
		v.focus = FocusTaskList
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		return v, v.submit()

	case key.Matches(msg, v.keys.Priority):
		v.priority = v.priority.Next()
		return v, nil

	case key.Matches(msg, v.keys.Category):
		v.category = v.category.Next()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit starts a create unless one is in flight
func (v *TaskListView) submit() tea.Cmd {
	text := strings.TrimSpace(v.input.Value())
	if text == "" || v.adding || v.loading {
		return nil
	}
	v.adding = true
	return v.createTask(text, v.priority, v.category, v.dueDate())
}

func (v *TaskListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The list can shrink under the cursor before the command result arrives.
	tasks := v.visibleTasks()
	if v.cursor >= len(tasks) {
		v.cursor = max(0, len(tasks)-1)
		v.ensureVisible()
	}

	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Tab):
		v.focus = FocusInput
		v.input.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(tasks)-1 {
			v.cursor++
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Toggle):
		if len(tasks) > 0 {
			return v, v.toggleTask(tasks[v.cursor].ID)
		}
		return v, nil

	case key.Matches(msg, v.keys.Delete):
		if len(tasks) > 0 {
			v.confirmingDelete = true
			v.deleteTargetID = tasks[v.cursor].ID
			v.deleteTargetName = tasks[v.cursor].Text
		}
		return v, nil

	case key.Matches(msg, v.keys.Reload):
		v.loading = true
		return v, v.loadTasks

	case key.Matches(msg, v.keys.Notifications):
		return v, func() tea.Msg { return ShowNotifications{} }

	case key.Matches(msg, v.keys.ClearNotifs):
		v.list.DismissNotifications()
		return v, nil

	case key.Matches(msg, v.keys.DismissError):
		v.list.ClearError()
		return v, nil

	case key.Matches(msg, v.keys.Priority):
		v.priority = v.priority.Next()
		return v, nil

	case key.Matches(msg, v.keys.Category):
		v.category = v.category.Next()
		return v, nil

	case key.Matches(msg, v.keys.PrevDay):
		v.dayOffset--
		return v, nil

	case key.Matches(msg, v.keys.NextDay):
		v.dayOffset++
		return v, nil

	case key.Matches(msg, v.keys.PrevWeek):
		v.dayOffset -= 7
		return v, nil

	case key.Matches(msg, v.keys.NextWeek):
		v.dayOffset += 7
		return v, nil
	}

	return v, nil
}

func (v *TaskListView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.confirmingDelete = false
		return v, v.deleteTask(v.deleteTargetID)
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

func (v *TaskListView) saveFormDefaults() {
	if v.settings == nil {
		return
	}
	if err := v.settings.SaveFormDefaults(v.priority, v.category); err != nil {
		v.logger.Warn("save form defaults", zap.Error(err))
	}
}

// visibleTasks is the collection in display order at the current time
func (v *TaskListView) visibleTasks() []models.Task {
	return v.list.SortedTasks(v.now())
}

// dueDate is the selected day in the date selector
func (v *TaskListView) dueDate() time.Time {
	return models.Today(v.now()).AddDate(0, 0, v.dayOffset)
}

func (v *TaskListView) clampCursor() {
	n := len(v.list.Tasks())
	if v.cursor >= n {
		v.cursor = max(0, n-1)
	}
	v.ensureVisible()
}

func (v *TaskListView) ensureVisible() {
	visibleItems := v.visibleItems()
	if v.cursor < v.scrollY {
		v.scrollY = v.cursor
	} else if v.cursor >= v.scrollY+visibleItems {
		v.scrollY = v.cursor - visibleItems + 1
	}
}

// visibleItems is how many one-line task rows fit under the header cards
func (v *TaskListView) visibleItems() int {
	return max(v.height-22, 1)
}

// View renders the view
func (v *TaskListView) View() string {
	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}

	now := v.now()
	var b strings.Builder

	b.WriteString(v.renderHeader())
	b.WriteString("\n")

	if msg := v.list.ErrorMessage(); msg != "" {
		b.WriteString(v.styles.ErrorLine.Render("⚠ " + msg + "  (x to dismiss)"))
		b.WriteString("\n")
	}
	if v.cheer != "" {
		b.WriteString(v.styles.Toast.Render("🎉 " + v.cheer))
		b.WriteString("\n")
	}
	b.WriteString(v.styles.Quote.Render(taskkeeper.MotivationalQuote(v.quoteIdx)))
	b.WriteString("\n")

	b.WriteString(v.renderStats(now))
	b.WriteString("\n")
	b.WriteString(v.renderInput())
	b.WriteString("\n\n")
	b.WriteString(v.renderTaskList(now))
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *TaskListView) renderHeader() string {
	s := v.styles
	title := s.Title.Render("Task Keeper ✨")

	pending := len(v.list.Notifications())
	bell := s.Bell.Render("🔔")
	if pending > 0 {
		bell = s.BellNew.Render(fmt.Sprintf("🔔 %d", pending))
	}

	today := models.Today(v.now())
	var days []string
	for offset := 0; offset < daysShown; offset++ {
		d := today.AddDate(0, 0, offset)
		label := fmt.Sprintf("%s %d", d.Format("Mon"), d.Day())
		style := s.Button
		if offset == v.dayOffset {
			style = s.ButtonFocused
		}
		days = append(days, style.Render(label))
	}
	if v.dayOffset < 0 || v.dayOffset >= daysShown {
		days = append(days, s.ButtonFocused.Render(v.dueDate().Format("Mon Jan 2")))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		title, "  ", bell, "  ",
		lipgloss.JoinHorizontal(lipgloss.Center, days...),
	)
}

func (v *TaskListView) renderStats(now time.Time) string {
	s := v.styles
	stats := v.list.Stats(now)

	summary := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Daily Progress"),
		s.TitleMuted.Render(fmt.Sprintf("%d of %d tasks completed", stats.Completed, stats.Total)),
	)
	pills := lipgloss.JoinHorizontal(lipgloss.Center,
		s.PillOverdue.Render(fmt.Sprintf("%d Overdue", stats.Overdue)),
		" ",
		s.PillLevel.Render(fmt.Sprintf("Level %d", stats.Level)),
	)

	return s.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		summary,
		v.bar.ViewAs(float64(stats.Progress)/100),
		pills,
	))
}

func (v *TaskListView) renderInput() string {
	s := v.styles

	inputStyle := s.Input
	if v.focus == FocusInput {
		inputStyle = s.InputFocused
	}

	addLabel := " Add "
	if v.adding {
		addLabel = " Adding... "
	} else if v.loading {
		addLabel = " Loading... "
	}

	flag := lipgloss.NewStyle().Foreground(styles.PriorityColor(v.priority)).Render("⚑ " + v.priority.String())
	tag := lipgloss.NewStyle().Foreground(styles.CategoryColor(v.category)).Render("● " + string(v.category))
	due := s.TitleMuted.Render("due " + v.dueDate().Format("Jan 2"))

	return lipgloss.JoinHorizontal(lipgloss.Center,
		inputStyle.Render(v.input.View()),
		" ",
		s.ButtonPrimary.Render(addLabel),
		"  ",
		lipgloss.JoinVertical(lipgloss.Left, flag, tag, due),
	)
}

func (v *TaskListView) renderTaskList(now time.Time) string {
	s := v.styles
	tasks := v.visibleTasks()

	if v.loading && len(tasks) == 0 {
		return s.TitleMuted.Render("Loading tasks...")
	}
	if len(tasks) == 0 {
		return s.TitleMuted.Render("No tasks yet. Type one above and press enter.")
	}

	var items []string
	endIdx := min(v.scrollY+v.visibleItems(), len(tasks))
	for i := v.scrollY; i < endIdx; i++ {
		items = append(items, v.renderTaskItem(tasks[i], now, i == v.cursor && v.focus == FocusTaskList))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (v *TaskListView) renderTaskItem(task models.Task, now time.Time, selected bool) string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	width := max(contentWidth-4, 20)

	check := "○"
	text := task.Text
	if task.Completed {
		check = "●"
		text = s.TaskDone.Render(text)
	}

	when := task.DueDate.Format("Jan 2")
	if taskkeeper.IsOverdue(task, now) {
		when = s.TaskOverdue.Render("Overdue")
	}

	flag := lipgloss.NewStyle().Foreground(styles.PriorityColor(task.Priority)).Render("⚑")
	tag := lipgloss.NewStyle().Foreground(styles.CategoryColor(task.Category)).Render(string(task.Category))

	line := fmt.Sprintf("%s %s %s  %s  %s", check, flag, text, tag, when)

	itemStyle := s.ListItem
	if selected {
		itemStyle = s.ListSelected
	}
	return itemStyle.Width(width).Render(line)
}

func (v *TaskListView) renderHelp() string {
	if v.focus == FocusInput {
		return v.styles.Help.Render(
			fmt.Sprintf("%s add • %s priority • %s category • %s tasks",
				v.styles.HelpKey.Render("↵"),
				v.styles.HelpKey.Render("ctrl+p"),
				v.styles.HelpKey.Render("ctrl+t"),
				v.styles.HelpKey.Render("tab"),
			),
		)
	}

	return v.styles.Help.Render(
		fmt.Sprintf("%s done • %s del • %s reload • %s reminders • %s clear • %s day • %s add • %s quit",
			v.styles.HelpKey.Render("space"),
			v.styles.HelpKey.Render("d"),
			v.styles.HelpKey.Render("r"),
			v.styles.HelpKey.Render("n"),
			v.styles.HelpKey.Render("c"),
			v.styles.HelpKey.Render("[ ] { }"),
			v.styles.HelpKey.Render("tab"),
			v.styles.HelpKey.Render("q"),
		),
	)
}

func (v *TaskListView) renderDeleteConfirm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render("Delete Task?"),
		"",
		s.TitleMuted.Render(fmt.Sprintf("%q will be removed.", v.deleteTargetName)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}
