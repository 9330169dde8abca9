package taskkeeper

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Atharvmulik/taskkeeper/internal/models"
)

var errStoreDown = errors.New("connection refused")

// fakeStore is an in-memory Store. Setting fail makes every call error.
type fakeStore struct {
	mu       sync.Mutex
	tasks    []models.Task
	nextID   int64
	fail     bool
	failMark bool

	creates int
	marks   []int64
}

func (s *fakeStore) ListTasks(ctx context.Context) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errStoreDown
	}
	return append([]models.Task(nil), s.tasks...), nil
}

func (s *fakeStore) CreateTask(ctx context.Context, text string, priority models.Priority, category models.Category, due time.Time) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creates++
	if s.fail {
		return models.Task{}, errStoreDown
	}
	if s.nextID == 0 {
		s.nextID = 42
	}
	t := models.Task{ID: s.nextID, Text: text, Priority: priority, Category: category, DueDate: due}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t, nil
}

func (s *fakeStore) ToggleTask(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return false, errStoreDown
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return s.tasks[i].Completed, nil
		}
	}
	return false, errors.New("status 404")
}

func (s *fakeStore) MarkOverdueNotified(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marks = append(s.marks, id)
	if s.fail || s.failMark {
		return errStoreDown
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].OverdueNotified = true
		}
	}
	return nil
}

func (s *fakeStore) DeleteTask(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errStoreDown
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return errors.New("status 404")
}

func (s *fakeStore) markCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.marks)
}

// fixedNow is 2026-10-14 10:30 local
var fixedNow = time.Date(2026, time.October, 14, 10, 30, 0, 0, time.Local)

func newTestList(store *fakeStore) *TaskList {
	return NewTaskList(store,
		WithClock(func() time.Time { return fixedNow }),
		WithRand(rand.New(rand.NewPCG(1, 2))),
	)
}

func loadedList(tasks ...models.Task) (*TaskList, *fakeStore) {
	store := &fakeStore{tasks: tasks}
	l := newTestList(store)
	if err := l.Load(context.Background()); err != nil {
		panic(err)
	}
	return l, store
}
