package dto

import (
	"strings"

	"github.com/jsamuelsen11/go-todo-list/internal/domain"
	"github.com/jsamuelsen11/go-todo-list/internal/domain/todo"
)

const (
	msgRequired     = domain.MsgRequired
	msgMustNotEmpty = "must not be empty"
	msgNoFields     = "must set at least one field"
)

// CreateTodoRequest represents the JSON body for creating a todo. Missing
// date parts default to their "unset" sentinels.
type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Day         string `json:"day"`
	Month       string `json:"month"`
	Year        string `json:"year"`
	Completed   bool   `json:"completed"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request into a todo without an ID.
func (r *CreateTodoRequest) ToDomain() *todo.Todo {
	return &todo.Todo{
		Title:       r.Title,
		Description: r.Description,
		Day:         r.Day,
		Month:       r.Month,
		Year:        r.Year,
		Completed:   r.Completed,
	}
}

// UpdateTodoRequest represents the JSON body for updating a todo.
// All fields are optional; nil means "do not change this field".
type UpdateTodoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Day         *string `json:"day,omitempty"`
	Month       *string `json:"month,omitempty"`
	Year        *string `json:"year,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// Validate checks that the body changes something and that a provided
// title is not blank. Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if r.ToPatch().Empty() {
		fields["body"] = msgNoFields
	}
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = msgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch converts the request into a domain patch.
func (r *UpdateTodoRequest) ToPatch() todo.Patch {
	return todo.Patch{
		Title:       r.Title,
		Description: r.Description,
		Day:         r.Day,
		Month:       r.Month,
		Year:        r.Year,
		Completed:   r.Completed,
	}
}
