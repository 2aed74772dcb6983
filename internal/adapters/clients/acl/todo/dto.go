// Package todo holds the wire shapes of the todo JSON API as seen by the
// gateway, and their translation to and from domain todos.
package todo

// TodoDTO is a todo as the API sends it.
type TodoDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Day         string `json:"day"`
	Month       string `json:"month"`
	Year        string `json:"year"`
	Completed   bool   `json:"completed"`
}

// CreateTodoRequestDTO is the body of POST /api/todos.
type CreateTodoRequestDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Day         string `json:"day,omitempty"`
	Month       string `json:"month,omitempty"`
	Year        string `json:"year,omitempty"`
	Completed   bool   `json:"completed"`
}

// UpdateTodoRequestDTO is the body of PUT /api/todos/{id}. Omitted fields
// are left unchanged by the API.
type UpdateTodoRequestDTO struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Day         *string `json:"day,omitempty"`
	Month       *string `json:"month,omitempty"`
	Year        *string `json:"year,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// ResetResponseDTO is the body returned by GET /api/reset.
type ResetResponseDTO struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}
