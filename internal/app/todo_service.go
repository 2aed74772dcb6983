// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-todo-list/internal/domain"
	"github.com/jsamuelsen11/go-todo-list/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-list/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService on top of a TodoRepository. It
// normalizes and validates input, merges partial updates and logs failures.
type TodoService struct {
	repo   ports.TodoRepository
	seed   ports.SeedSource
	logger *slog.Logger
}

// NewTodoService creates a TodoService. The seed source supplies the todos
// restored by Reset. A nil logger discards output.
func NewTodoService(repo ports.TodoRepository, seed ports.SeedSource, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		repo:   repo,
		seed:   seed,
		logger: logger,
	}
}

// ListTodos returns every todo in ascending ID order.
func (s *TodoService) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	s.logger.InfoContext(ctx, "listing todos")

	todos, err := s.repo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "ListTodos"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return todos, nil
}

// GetTodo returns a single todo by ID.
func (s *TodoService) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "fetching todo", slog.Int64("id", id))

	td, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo",
			slog.String("operation", "GetTodo"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return td, nil
}

// CreateTodo normalizes, validates and stores a new todo.
func (s *TodoService) CreateTodo(ctx context.Context, td *todo.Todo) (*todo.Todo, error) {
	if td == nil {
		return nil, &domain.ValidationError{Fields: map[string]string{"todo": domain.MsgRequired}}
	}
	s.logger.InfoContext(ctx, "creating todo", slog.String("title", td.Title))

	candidate := *td
	candidate.ID = 0
	candidate.Normalize()
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &candidate)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo",
			slog.String("operation", "CreateTodo"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// UpdateTodo merges patch into the stored todo, validates the result and
// saves it.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "updating todo", slog.Int64("id", id))

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo for update",
			slog.String("operation", "UpdateTodo"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	merged := *current
	patch.Apply(&merged)
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, &merged)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update todo",
			slog.String("operation", "UpdateTodo"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// DeleteTodo deletes a todo by ID.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting todo", slog.Int64("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete todo",
			slog.String("operation", "DeleteTodo"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// Reset wipes the collection and reloads the seed todos.
func (s *TodoService) Reset(ctx context.Context) (int, error) {
	s.logger.InfoContext(ctx, "resetting todos")

	seed, err := s.seed.Todos()
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load seed todos",
			slog.String("operation", "Reset"),
			slog.Any("error", err),
		)
		return 0, fmt.Errorf("loading seed: %w", err)
	}

	n, err := s.repo.Reset(ctx, seed)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to reset todos",
			slog.String("operation", "Reset"),
			slog.Any("error", err),
		)
		return 0, err
	}

	return n, nil
}

// SeedIfEmpty runs Reset when the store holds no todos. It reports whether
// seeding happened.
func (s *TodoService) SeedIfEmpty(ctx context.Context) (bool, error) {
	todos, err := s.repo.List(ctx)
	if err != nil {
		return false, fmt.Errorf("checking for existing todos: %w", err)
	}
	if len(todos) > 0 {
		return false, nil
	}

	n, err := s.Reset(ctx)
	if err != nil {
		return false, err
	}
	s.logger.InfoContext(ctx, "seeded empty store", slog.Int("count", n))
	return true, nil
}
