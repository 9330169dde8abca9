package remote

import (
	"time"

	"github.com/Atharvmulik/taskkeeper/internal/models"
)

const dateLayout = "2006-01-02"

// wireTask is the store's JSON shape. due_date has no time component.
type wireTask struct {
	ID              int64  `json:"id"`
	Text            string `json:"text"`
	Priority        string `json:"priority"`
	Category        string `json:"category"`
	DueDate         string `json:"due_date"`
	Completed       bool   `json:"completed"`
	OverdueNotified bool   `json:"overdue_notified"`
}

type createRequest struct {
	Text     string `json:"text"`
	Priority string `json:"priority"`
	Category string `json:"category"`
	DueDate  string `json:"due_date"`
}

type toggleResponse struct {
	Message   string `json:"message"`
	Completed bool   `json:"completed"`
}

func (w wireTask) toModel() (models.Task, error) {
	due, err := parseDate(w.DueDate)
	if err != nil {
		return models.Task{}, err
	}

	// The store defaults these columns, so an unknown value is kept
	// displayable rather than rejected.
	priority, err := models.ParsePriority(w.Priority)
	if err != nil {
		priority = models.PriorityMedium
	}
	category, err := models.ParseCategory(w.Category)
	if err != nil {
		category = models.CategoryStudy
	}

	return models.Task{
		ID:              w.ID,
		Text:            w.Text,
		Priority:        priority,
		Category:        category,
		DueDate:         due,
		Completed:       w.Completed,
		OverdueNotified: w.OverdueNotified,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	// Tolerate a full timestamp; only the calendar day matters.
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	return time.ParseInLocation(dateLayout, s, time.Local)
}

func formatDate(t time.Time) string {
	return t.In(time.Local).Format(dateLayout)
}
