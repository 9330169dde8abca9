package models

import (
	"fmt"
	"time"
)

// Priority ranks a task for sorting. The zero value is not a valid priority.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

// Priorities lists every priority from lowest to highest
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

// Rank returns the sort weight, higher first. Unknown priorities rank zero.
func (p Priority) Rank() int {
	if p < PriorityLow || p > PriorityHigh {
		return 0
	}
	return int(p)
}

// Next cycles Low -> Medium -> High -> Low
func (p Priority) Next() Priority {
	if p >= PriorityHigh || p < PriorityLow {
		return PriorityLow
	}
	return p + 1
}

// ParsePriority maps the store's wire string to a Priority
func ParsePriority(s string) (Priority, error) {
	for _, p := range Priorities {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown priority %q", s)
}

// Category is a display tag for a task
type Category string

const (
	CategoryStudy    Category = "Study"
	CategoryHealth   Category = "Health"
	CategoryPersonal Category = "Personal"
	CategoryProject  Category = "Project"
)

// Categories lists the fixed category set in display order
var Categories = []Category{CategoryStudy, CategoryHealth, CategoryPersonal, CategoryProject}

// Next cycles through Categories, wrapping at the end
func (c Category) Next() Category {
	for i, cat := range Categories {
		if cat == c {
			return Categories[(i+1)%len(Categories)]
		}
	}
	return Categories[0]
}

// ParseCategory validates a wire string against the fixed category set
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Task represents a single task as cached from the remote store
type Task struct {
	ID              int64
	Text            string
	Priority        Priority
	Category        Category
	DueDate         time.Time // local midnight
	Completed       bool
	OverdueNotified bool
}

// Notification is a client-only gentle push about an overdue task.
// TaskID is a reference; the task may be deleted independently.
type Notification struct {
	ID      string
	TaskID  int64
	Message string
	Quote   string
	Time    time.Time
}

// Date returns local midnight of the given calendar day
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// Today truncates now to local midnight
func Today(now time.Time) time.Time {
	now = now.In(time.Local)
	return Date(now.Year(), now.Month(), now.Day())
}
