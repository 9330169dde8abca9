package taskkeeper

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Atharvmulik/taskkeeper/internal/models"
)

// Store is the remote task store the list synchronizes with
type Store interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, text string, priority models.Priority, category models.Category, due time.Time) (models.Task, error)
	ToggleTask(ctx context.Context, id int64) (bool, error)
	MarkOverdueNotified(ctx context.Context, id int64) error
	DeleteTask(ctx context.Context, id int64) error
}

// TaskList caches the remote task collection and derives display state from it.
// It is safe for concurrent use. Mutations on the same task id run one at a time.
type TaskList struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
	intn   func(n int) int
	newID  func() string

	locks taskLocks

	mu            sync.RWMutex
	tasks         []models.Task
	notifications []models.Notification // newest first
	lastErr       error
	subscribers   []chan struct{}
}

// Option configures a TaskList
type Option func(*TaskList)

// WithLogger sets the logger used for failed remote calls
func WithLogger(logger *zap.Logger) Option {
	return func(l *TaskList) {
		l.logger = logger
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(l *TaskList) {
		l.now = now
	}
}

// WithRand makes quote selection deterministic. r is only used under the list lock.
func WithRand(r *rand.Rand) Option {
	return func(l *TaskList) {
		l.intn = r.IntN
	}
}

// NewTaskList creates an empty list backed by store
func NewTaskList(store Store, opts ...Option) *TaskList {
	l := &TaskList{
		store:  store,
		logger: zap.NewNop(),
		now:    time.Now,
		intn:   rand.IntN,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ToggleResult is the outcome of a successful ToggleComplete
type ToggleResult struct {
	Completed bool
	// Cheer is the congratulation picked when the task became completed
	Cheer string
}

// Load replaces the collection with the store's tasks. If the store cannot be
// reached the sample set is shown instead and the fetch error is returned.
func (l *TaskList) Load(ctx context.Context) error {
	tasks, err := l.store.ListTasks(ctx)
	if err != nil {
		l.logger.Error("load tasks", zap.Error(err))
		err = wrap(KindFetch, 0, err)

		l.mu.Lock()
		l.tasks = SampleTasks(l.now())
		l.pruneNotifications()
		l.lastErr = err
		l.mu.Unlock()
		l.changed()
		return err
	}

	seen := make(map[int64]bool, len(tasks))
	unique := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if seen[t.ID] {
			l.logger.Warn("duplicate task id from store", zap.Int64("task_id", t.ID))
			continue
		}
		seen[t.ID] = true
		unique = append(unique, t)
	}

	l.mu.Lock()
	l.tasks = unique
	l.pruneNotifications()
	l.lastErr = nil
	l.mu.Unlock()
	l.changed()
	return nil
}

// Create validates the input, submits it and prepends the stored record
func (l *TaskList) Create(ctx context.Context, text string, priority models.Priority, category models.Category, due time.Time) (models.Task, error) {
	text = strings.TrimSpace(text)
	if err := validateNewTask(text, priority, category, due); err != nil {
		return models.Task{}, l.fail(wrap(KindSubmit, 0, err))
	}

	task, err := l.store.CreateTask(ctx, text, priority, category, due)
	if err != nil {
		l.logger.Error("create task", zap.String("text", text), zap.Error(err))
		return models.Task{}, l.fail(wrap(KindSubmit, 0, err))
	}

	l.mu.Lock()
	l.tasks = slices.DeleteFunc(l.tasks, func(t models.Task) bool { return t.ID == task.ID })
	l.tasks = append([]models.Task{task}, l.tasks...)
	l.mu.Unlock()
	l.changed()
	return task, nil
}

func validateNewTask(text string, priority models.Priority, category models.Category, due time.Time) error {
	if text == "" {
		return ErrEmptyText
	}

	priorities := make([]any, len(models.Priorities))
	for i, p := range models.Priorities {
		priorities[i] = p
	}
	categories := make([]any, len(models.Categories))
	for i, c := range models.Categories {
		categories[i] = c
	}

	return validation.Errors{
		"priority": validation.Validate(priority, validation.Required, validation.In(priorities...)),
		"category": validation.Validate(category, validation.Required, validation.In(categories...)),
		"due_date": validation.Validate(due, validation.Required),
	}.Filter()
}

// ToggleComplete flips completion in the store and applies the value the store
// reports. Completing a task clears its pending notifications.
func (l *TaskList) ToggleComplete(ctx context.Context, id int64) (ToggleResult, error) {
	unlock := l.locks.lock(id)
	defer unlock()

	if _, ok := l.Task(id); !ok {
		return ToggleResult{}, l.fail(wrap(KindToggle, id, ErrTaskNotFound))
	}

	completed, err := l.store.ToggleTask(ctx, id)
	if err != nil {
		l.logger.Error("toggle task", zap.Int64("task_id", id), zap.Error(err))
		return ToggleResult{}, l.fail(wrap(KindToggle, id, err))
	}

	res := ToggleResult{Completed: completed}

	l.mu.Lock()
	if i := l.indexOf(id); i >= 0 {
		l.tasks[i].Completed = completed
	}
	if completed {
		res.Cheer = congratsQuotes[l.intn(len(congratsQuotes))]
		l.dropNotifications(id)
	}
	l.mu.Unlock()
	l.changed()
	return res, nil
}

// Delete removes the task from the store, then locally with its notifications.
// On failure the task stays visible so the user can retry.
func (l *TaskList) Delete(ctx context.Context, id int64) error {
	unlock := l.locks.lock(id)
	defer unlock()

	if _, ok := l.Task(id); !ok {
		return l.fail(wrap(KindDelete, id, ErrTaskNotFound))
	}

	if err := l.store.DeleteTask(ctx, id); err != nil {
		l.logger.Error("delete task", zap.Int64("task_id", id), zap.Error(err))
		return l.fail(wrap(KindDelete, id, err))
	}

	l.mu.Lock()
	l.tasks = slices.DeleteFunc(l.tasks, func(t models.Task) bool { return t.ID == id })
	l.dropNotifications(id)
	l.mu.Unlock()
	l.changed()
	return nil
}

// MarkOverdueNotified tells the store a gentle push was shown, then sets the
// local flag. Failures are logged and returned but never reach the error slot.
func (l *TaskList) MarkOverdueNotified(ctx context.Context, id int64) error {
	unlock := l.locks.lock(id)
	defer unlock()

	if err := l.store.MarkOverdueNotified(ctx, id); err != nil {
		l.logger.Warn("mark overdue notified", zap.Int64("task_id", id), zap.Error(err))
		return wrap(KindNotifyMark, id, err)
	}

	l.mu.Lock()
	i := l.indexOf(id)
	if i >= 0 {
		l.tasks[i].OverdueNotified = true
	}
	l.mu.Unlock()
	if i >= 0 {
		l.changed()
	}
	return nil
}

// ScanOverdue creates one notification for every overdue task that has not been
// notified and has no pending notification, then marks those tasks in the store.
// It returns the notifications it created.
func (l *TaskList) ScanOverdue(ctx context.Context, now time.Time) []models.Notification {
	l.mu.Lock()
	pending := make(map[int64]bool, len(l.notifications))
	for _, n := range l.notifications {
		pending[n.TaskID] = true
	}

	var created []models.Notification
	for _, t := range l.tasks {
		if t.OverdueNotified || pending[t.ID] || !IsOverdue(t, now) {
			continue
		}
		pending[t.ID] = true
		created = append(created, models.Notification{
			ID:      l.newID(),
			TaskID:  t.ID,
			Message: fmt.Sprintf("Gentle Push: \"%s\" is waiting for you!", t.Text),
			Quote:   gentlePushQuotes[l.intn(len(gentlePushQuotes))],
			Time:    now,
		})
	}
	if len(created) > 0 {
		l.notifications = append(slices.Clone(created), l.notifications...)
	}
	l.mu.Unlock()

	if len(created) == 0 {
		return nil
	}
	l.changed()

	for _, n := range created {
		// Best effort; the error is already logged.
		_ = l.MarkOverdueNotified(ctx, n.TaskID)
	}
	return created
}

// Tasks returns a copy of the collection in store order
func (l *TaskList) Tasks() []models.Task {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.tasks)
}

// Task looks up a task by id
func (l *TaskList) Task(id int64) (models.Task, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i := l.indexOf(id); i >= 0 {
		return l.tasks[i], true
	}
	return models.Task{}, false
}

// SortedTasks returns the collection in display order
func (l *TaskList) SortedTasks(now time.Time) []models.Task {
	return Sorted(l.Tasks(), now)
}

// Stats derives the progress card numbers
func (l *TaskList) Stats(now time.Time) Stats {
	return ComputeStats(l.Tasks(), now)
}

// Notifications returns pending notifications, newest first
func (l *TaskList) Notifications() []models.Notification {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.notifications)
}

// DismissNotifications clears every pending notification
func (l *TaskList) DismissNotifications() {
	l.mu.Lock()
	n := len(l.notifications)
	l.notifications = nil
	l.mu.Unlock()
	if n > 0 {
		l.changed()
	}
}

// LastError returns the error currently in the message slot
func (l *TaskList) LastError() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lastErr
}

// ErrorMessage returns the user-facing text of LastError, or "" if there is none
func (l *TaskList) ErrorMessage() string {
	err := l.LastError()
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		if errors.Is(e.Err, ErrEmptyText) {
			return "Please describe the task first."
		}
		return e.Message()
	}
	return err.Error()
}

// ClearError empties the message slot
func (l *TaskList) ClearError() {
	l.mu.Lock()
	l.lastErr = nil
	l.mu.Unlock()
}

// Subscribe returns a channel that receives a value after every change.
// Signals coalesce: a slow reader sees one pending value, not a backlog.
func (l *TaskList) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	l.mu.Lock()
	l.subscribers = append(l.subscribers, ch)
	l.mu.Unlock()
	return ch
}

func (l *TaskList) changed() {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, ch := range l.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// fail stores err in the message slot and returns it
func (l *TaskList) fail(err error) error {
	l.mu.Lock()
	l.lastErr = err
	l.mu.Unlock()
	return err
}

// indexOf must be called with mu held
func (l *TaskList) indexOf(id int64) int {
	return slices.IndexFunc(l.tasks, func(t models.Task) bool { return t.ID == id })
}

// pruneNotifications drops notifications whose task is gone or completed.
// It must be called with mu held for writing.
func (l *TaskList) pruneNotifications() {
	l.notifications = slices.DeleteFunc(l.notifications, func(n models.Notification) bool {
		i := l.indexOf(n.TaskID)
		return i < 0 || l.tasks[i].Completed
	})
}

// dropNotifications must be called with mu held for writing
func (l *TaskList) dropNotifications(taskID int64) {
	l.notifications = slices.DeleteFunc(l.notifications, func(n models.Notification) bool {
		return n.TaskID == taskID
	})
}
