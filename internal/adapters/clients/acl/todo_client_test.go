package acl

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-todo-list/internal/domain"
	"github.com/jsamuelsen11/go-todo-list/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-list/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-list/internal/platform/httpclient"
)

// newTestClient points an httpclient at baseURL with no retries and a breaker
// that opens after maxFailures consecutive failures.
func newTestClient(t *testing.T, baseURL string, maxFailures int) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   maxFailures,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	return httpclient.New(cfg, "todo-api", nil, slog.New(slog.DiscardHandler))
}

func newGateway(t *testing.T, h http.HandlerFunc) *TodoClient {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return NewTodoClient(newTestClient(t, ts.URL, 5), nil)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encoding response: %v", err)
	}
}

func writeProblem(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestTodoClient_ListTodos(t *testing.T) {
	t.Parallel()

	c := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/todos" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"id": 1, "title": "Buy milk", "description": "", "day": "00", "month": "03", "year": "2025", "completed": false},
			{"id": 2, "title": "Gym", "description": "legs", "day": "00", "month": "00", "year": "0000", "completed": true},
		})
	})

	todos, err := c.ListTodos(context.Background())
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("len(todos) = %d, want 2", len(todos))
	}
	if todos[0].DueDate() != "03/25" {
		t.Errorf("todos[0].DueDate() = %q, want 03/25", todos[0].DueDate())
	}
	if !todos[1].Completed {
		t.Error("todos[1].Completed = false, want true")
	}
}

func TestTodoClient_CreateTodo(t *testing.T) {
	t.Parallel()

	c := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/todos" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		if _, ok := body["id"]; ok {
			t.Error("create body carries an id")
		}
		body["id"] = 8
		writeJSON(t, w, http.StatusCreated, body)
	})

	created, err := c.CreateTodo(context.Background(), &todo.Todo{
		Title: "Laundry", Day: todo.NoDay, Month: "07", Year: "2026",
	})
	if err != nil {
		t.Fatalf("CreateTodo() error = %v", err)
	}
	if created.ID != 8 || created.Title != "Laundry" || created.Month != "07" {
		t.Errorf("created = %+v", created)
	}
}

func TestTodoClient_CreateTodo_ValidationError(t *testing.T) {
	t.Parallel()

	c := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		writeProblem(w, http.StatusBadRequest, `{"type":"about:blank","title":"Bad Request","status":400,
			"errors":[{"location":"body.title","message":"You must enter a title at least 3 characters long."}]}`)
	})

	_, err := c.CreateTodo(context.Background(), &todo.Todo{Title: "ab"})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if verr.Fields["title"] != todo.MsgTitleTooShort {
		t.Errorf("Fields[title] = %q, want %q", verr.Fields["title"], todo.MsgTitleTooShort)
	}
}

func TestTodoClient_UpdateTodo_SendsPatch(t *testing.T) {
	t.Parallel()

	c := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/todos/4" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		if len(body) != 1 || body["completed"] != true {
			t.Errorf("body = %v, want only completed=true", body)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id": 4, "title": "Gym", "day": "00", "month": "00", "year": "0000", "completed": true,
		})
	})

	done := true
	updated, err := c.UpdateTodo(context.Background(), 4, todo.Patch{Completed: &done})
	if err != nil {
		t.Fatalf("UpdateTodo() error = %v", err)
	}
	if !updated.Completed || updated.ID != 4 {
		t.Errorf("updated = %+v", updated)
	}
}

func TestTodoClient_DeleteTodo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "deleted", status: http.StatusNoContent},
		{name: "not found", status: http.StatusNotFound, wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodDelete || r.URL.Path != "/api/todos/3" {
					t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
				}
				w.WriteHeader(tt.status)
			})

			err := c.DeleteTodo(context.Background(), 3)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("DeleteTodo() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("DeleteTodo() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTodoClient_Reset(t *testing.T) {
	t.Parallel()

	c := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/reset" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"status": "reset", "count": 7})
	})

	if err := c.Reset(context.Background()); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
}

func TestTodoClient_ServerErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	c := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		writeProblem(w, http.StatusInternalServerError,
			`{"type":"about:blank","title":"Internal Server Error","status":500}`)
	})

	_, err := c.ListTodos(context.Background())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("ListTodos() error = %v, want ErrUnavailable", err)
	}
}

func TestTodoClient_MalformedBody(t *testing.T) {
	t.Parallel()

	c := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, "{not json")
	})

	if _, err := c.ListTodos(context.Background()); err == nil {
		t.Fatal("ListTodos() error = nil, want decode error")
	}
}

func TestTodoClient_HealthCheck(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(ts.Close)

	c := NewTodoClient(newTestClient(t, ts.URL, 1), nil)

	if c.Name() != "todo-api" {
		t.Errorf("Name() = %q, want todo-api", c.Name())
	}
	if err := c.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck() before failures = %v, want nil", err)
	}

	_, _ = c.ListTodos(context.Background())

	if err := c.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() after breaker opened = nil, want error")
	}
}
