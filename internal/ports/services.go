package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todo-list/internal/domain/todo"
)

// TodoService defines the service port for todo operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type TodoService interface {
	// ListTodos returns every todo in ascending ID order.
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// GetTodo returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// CreateTodo validates and stores a new todo, returning it with its ID.
	// Returns domain.ErrValidation if the todo fails validation.
	CreateTodo(ctx context.Context, td *todo.Todo) (*todo.Todo, error)

	// UpdateTodo merges patch into the stored todo and saves the result.
	// Returns domain.ErrNotFound or domain.ErrValidation.
	UpdateTodo(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error)

	// DeleteTodo deletes a todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id int64) error

	// Reset wipes the collection and reloads the seed todos, returning how
	// many todos the collection now holds.
	Reset(ctx context.Context) (int, error)
}
