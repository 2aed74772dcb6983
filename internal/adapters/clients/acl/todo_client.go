package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	acltodo "github.com/jsamuelsen11/go-todo-list/internal/adapters/clients/acl/todo"
	"github.com/jsamuelsen11/go-todo-list/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-list/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-todo-list/internal/ports"
)

var (
	_ ports.TodoGateway   = (*TodoClient)(nil)
	_ ports.HealthChecker = (*TodoClient)(nil)
)

const todosPath = "/api/todos"

// TodoClient implements [ports.TodoGateway] against the todo JSON API. The
// underlying httpclient supplies the circuit breaker, rate limit, retries
// and tracing.
type TodoClient struct {
	client *httpclient.Client
	req    *Requester
}

// NewTodoClient returns a gateway rooted at the client's base URL, e.g.
// "http://localhost:8080".
func NewTodoClient(client *httpclient.Client, logger *slog.Logger) *TodoClient {
	return &TodoClient{
		client: client,
		req:    NewRequester(client, logger),
	}
}

// ListTodos calls GET /api/todos.
func (c *TodoClient) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	var dtos []acltodo.TodoDTO
	if err := c.req.Do(ctx, http.MethodGet, todosPath, http.StatusOK, nil, &dtos); err != nil {
		return nil, err
	}
	return acltodo.ToDomainTodoList(dtos), nil
}

// CreateTodo calls POST /api/todos and returns the todo with its new ID.
func (c *TodoClient) CreateTodo(ctx context.Context, td *todo.Todo) (*todo.Todo, error) {
	var dto acltodo.TodoDTO
	if err := c.req.Do(ctx, http.MethodPost, todosPath, http.StatusCreated, acltodo.ToCreateTodoRequest(td), &dto); err != nil {
		return nil, err
	}
	created := acltodo.ToDomainTodo(&dto)
	return &created, nil
}

// UpdateTodo calls PUT /api/todos/{id} with only the patched fields.
func (c *TodoClient) UpdateTodo(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error) {
	var dto acltodo.TodoDTO
	if err := c.req.Do(ctx, http.MethodPut, todoPath(id), http.StatusOK, acltodo.ToUpdateTodoRequest(patch), &dto); err != nil {
		return nil, err
	}
	updated := acltodo.ToDomainTodo(&dto)
	return &updated, nil
}

// DeleteTodo calls DELETE /api/todos/{id}.
func (c *TodoClient) DeleteTodo(ctx context.Context, id int64) error {
	return c.req.Do(ctx, http.MethodDelete, todoPath(id), http.StatusNoContent, nil, nil)
}

// Reset calls GET /api/reset.
func (c *TodoClient) Reset(ctx context.Context) error {
	var dto acltodo.ResetResponseDTO
	return c.req.Do(ctx, http.MethodGet, "/api/reset", http.StatusOK, nil, &dto)
}

func todoPath(id int64) string {
	return fmt.Sprintf("%s/%d", todosPath, id)
}
