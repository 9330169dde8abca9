package taskkeeper

import (
	"time"

	"github.com/Atharvmulik/taskkeeper/internal/models"
)

// congratsQuotes are shown when a task is completed
var congratsQuotes = []string{
	"Small steps lead to big changes!",
	"You are doing great, keep it up!",
	"Success is the sum of small efforts.",
	"One task at a time!",
	"You're making progress every day!",
}

// gentlePushQuotes accompany overdue notifications
var gentlePushQuotes = []string{
	"Don't worry about being late, focus on starting now! 💪",
	"It's okay to fall behind, just don't quit. You've got this! ✨",
	"Your future self will thank you for finishing this today. 🌟",
	"Mistakes are proof that you are trying. Keep going! ❤️",
}

var motivationalQuotes = []string{
	"Believe in yourself. Small steps lead to big success ❤️",
	"Consistency beats motivation. Keep going ✨",
	"Your hard work today will pay off tomorrow 🌟",
	"Every small effort counts toward your big dream 🚀",
}

// MotivationalQuote returns the i-th rotating banner quote, wrapping around
func MotivationalQuote(i int) string {
	n := len(motivationalQuotes)
	return motivationalQuotes[((i%n)+n)%n]
}

// MotivationalQuoteCount is the size of the banner rotation
func MotivationalQuoteCount() int {
	return len(motivationalQuotes)
}

// SampleTasks is the offline fallback shown when the store cannot be reached
func SampleTasks(now time.Time) []models.Task {
	today := models.Today(now)
	yesterday := today.AddDate(0, 0, -1)

	return []models.Task{
		{ID: 1, Text: "Finish Physics assignment", Priority: models.PriorityHigh, Category: models.CategoryStudy, DueDate: today},
		{ID: 2, Text: "Evening 30 min yoga", Priority: models.PriorityMedium, Category: models.CategoryHealth, DueDate: today, Completed: true},
		{ID: 3, Text: "Review scholarship essay", Priority: models.PriorityHigh, Category: models.CategoryProject, DueDate: yesterday},
	}
}
