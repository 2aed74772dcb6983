package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todo-list/internal/domain/todo"
)

// TodoGateway is the front-end's port to the todo REST API.
// Implemented by the ACL adapter; called by the Controller.
type TodoGateway interface {
	// ListTodos returns every todo in ascending id order.
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// CreateTodo saves a new todo and returns it with its server-assigned ID.
	CreateTodo(ctx context.Context, td *todo.Todo) (*todo.Todo, error)

	// UpdateTodo applies a partial update and returns the stored result.
	// Returns domain.ErrNotFound if the todo does not exist.
	UpdateTodo(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error)

	// DeleteTodo removes a todo.
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id int64) error

	// Reset restores the collection to its seed state.
	Reset(ctx context.Context) error
}
