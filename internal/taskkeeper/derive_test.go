package taskkeeper

import (
	"testing"
	"time"

	"github.com/Atharvmulik/taskkeeper/internal/models"
)

func TestIsOverdue(t *testing.T) {
	today := models.Today(fixedNow)
	yesterday := today.AddDate(0, 0, -1)
	lastYear := today.AddDate(-1, 0, 0)

	tests := []struct {
		name string
		task models.Task
		now  time.Time
		want bool
	}{
		{"completed past due", models.Task{DueDate: lastYear, Completed: true}, fixedNow, false},
		{"completed yesterday", models.Task{DueDate: yesterday, Completed: true}, fixedNow, false},
		{"open yesterday", models.Task{DueDate: yesterday}, fixedNow, true},
		{"open last year", models.Task{DueDate: lastYear}, fixedNow, true},
		{"open today", models.Task{DueDate: today}, fixedNow, false},
		{"open today at 23:59:59", models.Task{DueDate: today}, today.Add(23*time.Hour + 59*time.Minute + 59*time.Second), false},
		{"open today just after end of day", models.Task{DueDate: today}, today.Add(23*time.Hour + 59*time.Minute + 59*time.Second + time.Millisecond), true},
		{"open tomorrow", models.Task{DueDate: today.AddDate(0, 0, 1)}, fixedNow, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOverdue(tt.task, tt.now); got != tt.want {
				t.Errorf("Expected IsOverdue %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSortedOverdueFirstThenPriority(t *testing.T) {
	today := models.Today(fixedNow)
	yesterday := today.AddDate(0, 0, -1)

	tasks := []models.Task{
		{ID: 1, Priority: models.PriorityLow, DueDate: today},
		{ID: 2, Priority: models.PriorityHigh, DueDate: today},
		{ID: 3, Priority: models.PriorityLow, DueDate: yesterday},
		{ID: 4, Priority: models.PriorityMedium, DueDate: today},
		{ID: 5, Priority: models.PriorityHigh, DueDate: yesterday},
	}

	got := ids(Sorted(tasks, fixedNow))
	want := []int64{5, 3, 2, 4, 1}
	if !equalIDs(got, want) {
		t.Errorf("Expected order %v, got %v", want, got)
	}

	// The input is left untouched.
	if tasks[0].ID != 1 {
		t.Errorf("Expected Sorted to copy, input reordered to %v", ids(tasks))
	}
}

func TestSortedIsStable(t *testing.T) {
	today := models.Today(fixedNow)
	tasks := []models.Task{
		{ID: 10, Priority: models.PriorityMedium, DueDate: today},
		{ID: 11, Priority: models.PriorityHigh, DueDate: today},
		{ID: 12, Priority: models.PriorityMedium, DueDate: today},
		{ID: 13, Priority: models.PriorityMedium, DueDate: today},
		{ID: 14, Priority: models.PriorityHigh, DueDate: today},
	}

	got := ids(Sorted(tasks, fixedNow))
	want := []int64{11, 14, 10, 12, 13}
	if !equalIDs(got, want) {
		t.Errorf("Expected order %v, got %v", want, got)
	}
}

func TestSortedHighBeforeLow(t *testing.T) {
	today := models.Today(fixedNow)
	tasks := []models.Task{
		{ID: 1, Priority: models.PriorityLow, DueDate: today},
		{ID: 2, Priority: models.PriorityHigh, DueDate: today},
	}
	got := Sorted(tasks, fixedNow)
	if got[0].Priority != models.PriorityHigh || got[1].Priority != models.PriorityLow {
		t.Errorf("Expected [High, Low], got [%s, %s]", got[0].Priority, got[1].Priority)
	}
}

func TestProgress(t *testing.T) {
	if got := Progress(nil); got != 0 {
		t.Errorf("Expected 0 for empty list, got %d", got)
	}

	tasks := []models.Task{{Completed: true}, {}, {}}
	if got := Progress(tasks); got != 33 {
		t.Errorf("Expected 33, got %d", got)
	}

	tasks = []models.Task{{Completed: true}, {Completed: true}, {}}
	if got := Progress(tasks); got != 67 {
		t.Errorf("Expected 67, got %d", got)
	}
}

func TestComputeStats(t *testing.T) {
	yesterday := models.Today(fixedNow).AddDate(0, 0, -1)
	var tasks []models.Task
	for i := 0; i < 6; i++ {
		tasks = append(tasks, models.Task{ID: int64(i + 1), Completed: true, DueDate: yesterday})
	}
	tasks = append(tasks, models.Task{ID: 7, DueDate: yesterday})

	s := ComputeStats(tasks, fixedNow)
	if s.Total != 7 || s.Completed != 6 {
		t.Errorf("Expected 6 of 7 completed, got %d of %d", s.Completed, s.Total)
	}
	if s.Overdue != 1 {
		t.Errorf("Expected 1 overdue, got %d", s.Overdue)
	}
	if s.Level != 2 {
		t.Errorf("Expected level 2, got %d", s.Level)
	}
	if s.Progress != 86 {
		t.Errorf("Expected progress 86, got %d", s.Progress)
	}
}

func ids(tasks []models.Task) []int64 {
	out := make([]int64, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
