package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/go-todo-list/internal/domain"
	"github.com/jsamuelsen11/go-todo-list/internal/domain/todo"
)

type todoRow struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Day         string `db:"day"`
	Month       string `db:"month"`
	Year        string `db:"year"`
	Completed   bool   `db:"completed"`
}

func (r todoRow) toDomain() todo.Todo {
	return todo.Todo{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Day:         r.Day,
		Month:       r.Month,
		Year:        r.Year,
		Completed:   r.Completed,
	}
}

const selectTodos = `SELECT id, title, description, day, month, year, completed FROM todos`

const insertTodo = `
	INSERT INTO todos (title, description, day, month, year, completed)
	VALUES (?, ?, ?, ?, ?, ?)`

// List returns all todos ordered by ID.
func (s *Store) List(ctx context.Context) (todos []todo.Todo, err error) {
	defer func() { s.record(ctx, "list", err) }()

	var rows []todoRow
	if err := s.db.SelectContext(ctx, &rows, selectTodos+" ORDER BY id"); err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}

	todos = make([]todo.Todo, 0, len(rows))
	for _, r := range rows {
		todos = append(todos, r.toDomain())
	}
	return todos, nil
}

// Get retrieves a single todo by ID.
func (s *Store) Get(ctx context.Context, id int64) (_ *todo.Todo, err error) {
	defer func() { s.record(ctx, "get", err) }()

	var row todoRow
	err = s.db.GetContext(ctx, &row, selectTodos+" WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting todo %d: %w", id, err)
	}

	td := row.toDomain()
	return &td, nil
}

// Create inserts a new todo. The ID of td is ignored.
func (s *Store) Create(ctx context.Context, td *todo.Todo) (_ *todo.Todo, err error) {
	defer func() { s.record(ctx, "create", err) }()

	res, err := s.db.ExecContext(ctx, insertTodo,
		td.Title, td.Description, td.Day, td.Month, td.Year, td.Completed,
	)
	if err != nil {
		return nil, fmt.Errorf("creating todo: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new todo id: %w", err)
	}

	created := *td
	created.ID = id
	return &created, nil
}

// Update overwrites the row with td.ID.
func (s *Store) Update(ctx context.Context, td *todo.Todo) (_ *todo.Todo, err error) {
	defer func() { s.record(ctx, "update", err) }()

	res, err := s.db.ExecContext(ctx, `
		UPDATE todos SET
			title = ?, description = ?, day = ?, month = ?, year = ?, completed = ?
		WHERE id = ?`,
		td.Title, td.Description, td.Day, td.Month, td.Year, td.Completed,
		td.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating todo %d: %w", td.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating todo %d: %w", td.ID, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("todo %d: %w", td.ID, domain.ErrNotFound)
	}

	updated := *td
	return &updated, nil
}

// Delete removes a todo by ID.
func (s *Store) Delete(ctx context.Context, id int64) (err error) {
	defer func() { s.record(ctx, "delete", err) }()

	res, err := s.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting todo %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting todo %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Reset deletes every todo, restarts the ID sequence and inserts seed in
// order, all in one transaction.
func (s *Store) Reset(ctx context.Context, seed []todo.Todo) (_ int, err error) {
	defer func() { s.record(ctx, "reset", err) }()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM todos"); err != nil {
		return 0, fmt.Errorf("clearing todos: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM sqlite_sequence WHERE name = 'todos'"); err != nil {
		return 0, fmt.Errorf("resetting todo ids: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx, insertTodo)
	if err != nil {
		return 0, fmt.Errorf("preparing seed insert: %w", err)
	}
	defer stmt.Close()

	for i, td := range seed {
		_, err := stmt.ExecContext(ctx,
			td.Title, td.Description, td.Day, td.Month, td.Year, td.Completed,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting seed todo %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing reset: %w", err)
	}
	return len(seed), nil
}
