package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Atharvmulik/taskkeeper/internal/models"
)

func TestListTasks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/tasks/" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 7, "text": "Read chapter 4", "priority": "High", "category": "Study",
			 "due_date": "2026-03-09", "completed": false, "overdue_notified": true}
		]`))
	}))
	defer srv.Close()

	tasks, err := New(srv.URL, time.Second).ListTasks(context.Background())
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("Expected 1 task, got %d", len(tasks))
	}

	got := tasks[0]
	if got.ID != 7 || got.Text != "Read chapter 4" {
		t.Errorf("Unexpected task %+v", got)
	}
	if got.Priority != models.PriorityHigh {
		t.Errorf("Expected priority High, got %s", got.Priority)
	}
	if got.Category != models.CategoryStudy {
		t.Errorf("Expected category Study, got %s", got.Category)
	}
	if !got.DueDate.Equal(models.Date(2026, time.March, 9)) {
		t.Errorf("Expected due date 2026-03-09, got %v", got.DueDate)
	}
	if !got.OverdueNotified {
		t.Error("Expected overdue_notified to map to OverdueNotified")
	}
}

func TestCreateTaskSendsWireFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["due_date"] != "2026-10-14" {
			t.Errorf("Expected due_date 2026-10-14, got %q", body["due_date"])
		}
		if body["priority"] != "Medium" || body["category"] != "Health" {
			t.Errorf("Unexpected body %v", body)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id": 42, "text": body["text"], "priority": body["priority"], "category": body["category"],
			"due_date": body["due_date"], "completed": false, "overdue_notified": false,
		})
	}))
	defer srv.Close()

	task, err := New(srv.URL, time.Second).CreateTask(context.Background(),
		"Stretch", models.PriorityMedium, models.CategoryHealth, models.Date(2026, time.October, 14))
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if task.ID != 42 || task.Text != "Stretch" {
		t.Errorf("Unexpected created task %+v", task)
	}
}

func TestToggleTask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/tasks/3/toggle" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"message": "Task updated", "completed": true}`))
	}))
	defer srv.Close()

	completed, err := New(srv.URL, time.Second).ToggleTask(context.Background(), 3)
	if err != nil {
		t.Fatalf("ToggleTask failed: %v", err)
	}
	if !completed {
		t.Error("Expected completed to be true")
	}
}

func TestNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Task not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	err := New(srv.URL, time.Second).DeleteTask(context.Background(), 99)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Expected *StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", statusErr.Code)
	}
	if statusErr.Path != "/tasks/99" {
		t.Errorf("Expected path /tasks/99, got %s", statusErr.Path)
	}
}

func TestRequestTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	err := New(srv.URL, 50*time.Millisecond).MarkOverdueNotified(context.Background(), 1)
	if err == nil {
		t.Fatal("Expected a timeout error, got nil")
	}
}

func TestParseDateAcceptsTimestamp(t *testing.T) {
	d, err := parseDate("2026-01-02T00:00:00")
	if err != nil {
		t.Fatalf("parseDate failed: %v", err)
	}
	if !d.Equal(models.Date(2026, time.January, 2)) {
		t.Errorf("Expected 2026-01-02, got %v", d)
	}
}
