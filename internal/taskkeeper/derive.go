package taskkeeper

import (
	"math"
	"slices"
	"time"

	"github.com/Atharvmulik/taskkeeper/internal/models"
)

// IsOverdue reports whether the task's due day has fully elapsed.
// Completed tasks are never overdue.
func IsOverdue(task models.Task, now time.Time) bool {
	if task.Completed {
		return false
	}
	due := task.DueDate.In(time.Local)
	endOfDay := time.Date(due.Year(), due.Month(), due.Day(), 23, 59, 59, 0, time.Local)
	return endOfDay.Before(now)
}

// Sorted returns a copy of tasks with overdue tasks first, then by priority
// High to Low. Ties keep their original relative order.
func Sorted(tasks []models.Task, now time.Time) []models.Task {
	out := slices.Clone(tasks)
	slices.SortStableFunc(out, func(a, b models.Task) int {
		aOver, bOver := IsOverdue(a, now), IsOverdue(b, now)
		if aOver != bOver {
			if aOver {
				return -1
			}
			return 1
		}
		return b.Priority.Rank() - a.Priority.Rank()
	})
	return out
}

// Progress is the rounded completion percentage, 0 for an empty list
func Progress(tasks []models.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(tasks))))
}

// Stats aggregates the numbers shown on the progress card
type Stats struct {
	Total     int
	Completed int
	Overdue   int
	Progress  int
	Level     int
}

// ComputeStats derives Stats for the given time. Level goes up every five completions.
func ComputeStats(tasks []models.Task, now time.Time) Stats {
	s := Stats{Total: len(tasks), Progress: Progress(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
		if IsOverdue(t, now) {
			s.Overdue++
		}
	}
	s.Level = s.Completed/5 + 1
	return s
}
