// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import "github.com/jsamuelsen11/go-todo-list/internal/domain/todo"

// TodoResponse is the flat JSON form of a todo.
type TodoResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Day         string `json:"day"`
	Month       string `json:"month"`
	Year        string `json:"year"`
	Completed   bool   `json:"completed"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Day:         t.Day,
		Month:       t.Month,
		Year:        t.Year,
		Completed:   t.Completed,
	}
}

// ToTodoListResponse converts todos into a JSON array. An empty collection
// encodes as [] rather than null.
func ToTodoListResponse(todos []todo.Todo) []TodoResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return items
}

// ResetResponse reports the outcome of GET /api/reset.
type ResetResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// HealthResponse represents the JSON body for health check endpoints.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
