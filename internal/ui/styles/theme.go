package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Atharvmulik/taskkeeper/internal/models"
)

// Theme is a color scheme for the application
type Theme struct {
	Name string

	Background    lipgloss.Color
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color
}

// Amber is the default theme, warm accents on slate
var Amber = Theme{
	Name: "Amber",

	Background:    lipgloss.Color("#0f172a"),
	Foreground:    lipgloss.Color("#f1f5f9"),
	ForegroundDim: lipgloss.Color("#64748b"),

	Primary:   lipgloss.Color("#f59e0b"),
	Secondary: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#4ade80"),
	Warning: lipgloss.Color("#fb923c"),
	Error:   lipgloss.Color("#f87171"),
	Info:    lipgloss.Color("#60a5fa"),

	Border:      lipgloss.Color("#334155"),
	BorderFocus: lipgloss.Color("#f59e0b"),
	Selection:   lipgloss.Color("#1e293b"),
}

// Current holds the active theme
var Current = Amber

// MaxWidth is the maximum content width for the app (classic terminal width)
const MaxWidth = 80

// ContentWidth returns the actual content width to use (min of terminal width and MaxWidth)
func ContentWidth(terminalWidth int) int {
	if terminalWidth > MaxWidth {
		return MaxWidth
	}
	return terminalWidth
}

// CenterView wraps content and centers it horizontally if terminal is wider than MaxWidth
func CenterView(content string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= MaxWidth {
		return content
	}
	return lipgloss.Place(terminalWidth, terminalHeight,
		lipgloss.Center, lipgloss.Top,
		content,
	)
}

// CategoryColor returns the tag color for a category
func CategoryColor(category models.Category) lipgloss.Color {
	switch category {
	case models.CategoryStudy:
		return Current.Info
	case models.CategoryHealth:
		return Current.Success
	case models.CategoryPersonal:
		return Current.Secondary
	case models.CategoryProject:
		return Current.Warning
	}
	return Current.ForegroundDim
}

// PriorityColor returns the flag color for a priority
func PriorityColor(priority models.Priority) lipgloss.Color {
	switch priority {
	case models.PriorityHigh:
		return Current.Error
	case models.PriorityMedium:
		return Current.Warning
	}
	return Current.ForegroundDim
}

// Styles holds all the pre-computed styles for the UI
type Styles struct {
	// Title bar
	Title      lipgloss.Style
	TitleMuted lipgloss.Style

	// Lists
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style

	// Cards and panels
	Card  lipgloss.Style
	Panel lipgloss.Style

	// Buttons
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ButtonPrimary lipgloss.Style

	// Pills on the stats card
	PillOverdue lipgloss.Style
	PillLevel   lipgloss.Style

	// Task item
	TaskDone    lipgloss.Style
	TaskOverdue lipgloss.Style

	// Feedback
	ErrorLine lipgloss.Style
	Toast     lipgloss.Style
	Quote     lipgloss.Style
	Bell      lipgloss.Style
	BellNew   lipgloss.Style

	// Input fields
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Help text
	Help    lipgloss.Style
	HelpKey lipgloss.Style
}

// NewStyles creates styles based on the current theme
func NewStyles() *Styles {
	t := Current

	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		TitleMuted: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 2),

		ListSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Padding(0, 2).
			Bold(true),

		Card: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),

		Panel: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus),

		Button: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(t.Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1).
			Bold(true),

		ButtonPrimary: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Primary).
			Padding(0, 2).
			Bold(true),

		PillOverdue: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Error).
			Padding(0, 1),

		PillLevel: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Success).
			Padding(0, 1),

		TaskDone: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Strikethrough(true),

		TaskOverdue: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),

		ErrorLine: lipgloss.NewStyle().
			Foreground(t.Error).
			Padding(0, 1),

		Toast: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Warning).
			Padding(0, 2).
			Bold(true),

		Quote: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Italic(true),

		Bell: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		BellNew: lipgloss.NewStyle().
			Foreground(t.Warning).
			Bold(true),

		Input: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(1, 2),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
	}
}
