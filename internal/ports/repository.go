package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todo-list/internal/domain/todo"
)

// TodoRepository persists todos for the REST API.
type TodoRepository interface {
	// List returns all todos ordered by ascending ID.
	List(ctx context.Context) ([]todo.Todo, error)

	// Get returns a todo by ID or domain.ErrNotFound.
	Get(ctx context.Context, id int64) (*todo.Todo, error)

	// Create inserts td, ignoring its ID, and returns the stored row.
	Create(ctx context.Context, td *todo.Todo) (*todo.Todo, error)

	// Update overwrites every column of the row with td.ID.
	// Returns domain.ErrNotFound if no row matched.
	Update(ctx context.Context, td *todo.Todo) (*todo.Todo, error)

	// Delete removes a todo by ID or returns domain.ErrNotFound.
	Delete(ctx context.Context, id int64) error

	// Reset wipes the table, restarts IDs at 1 and inserts seed in order.
	// It returns the number of rows inserted.
	Reset(ctx context.Context, seed []todo.Todo) (int, error)
}

// SeedSource provides the todos loaded on reset.
type SeedSource interface {
	Todos() ([]todo.Todo, error)
}
