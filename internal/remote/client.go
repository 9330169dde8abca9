package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Atharvmulik/taskkeeper/internal/models"
)

// Client talks to the remote task store over HTTP+JSON
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default instrumented http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a client for the store at baseURL. A zero timeout means no timeout.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StatusError is returned when the store answers with a non-2xx status
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Code)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

// ListTasks fetches every task in the store
func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var wire []wireTask
	if err := c.do(ctx, http.MethodGet, "/tasks/", nil, &wire); err != nil {
		return nil, err
	}

	tasks := make([]models.Task, 0, len(wire))
	for _, w := range wire {
		t, err := w.toModel()
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", w.ID, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// CreateTask submits a new task and returns the stored record with its assigned id
func (c *Client) CreateTask(ctx context.Context, text string, priority models.Priority, category models.Category, due time.Time) (models.Task, error) {
	req := createRequest{
		Text:     text,
		Priority: priority.String(),
		Category: string(category),
		DueDate:  formatDate(due),
	}

	var w wireTask
	if err := c.do(ctx, http.MethodPost, "/tasks/", req, &w); err != nil {
		return models.Task{}, err
	}
	return w.toModel()
}

// ToggleTask flips completion in the store and returns the authoritative new value
func (c *Client) ToggleTask(ctx context.Context, id int64) (bool, error) {
	var res toggleResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d/toggle", id), nil, &res); err != nil {
		return false, err
	}
	return res.Completed, nil
}

// MarkOverdueNotified records that a gentle push was shown for the task
func (c *Client) MarkOverdueNotified(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d/overdue", id), nil, nil)
}

// DeleteTask removes a task from the store
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil)
}

// do sends one request. body is JSON-encoded when non-nil, out is decoded when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{
			Method: method,
			Path:   path,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(msg)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
