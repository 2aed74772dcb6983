package todo

import (
	domtodo "github.com/jsamuelsen11/go-todo-list/internal/domain/todo"
)

// ToDomainTodo converts an API todo. Missing date parts become the unset
// sentinels.
func ToDomainTodo(dto *TodoDTO) domtodo.Todo {
	td := domtodo.Todo{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		Day:         dto.Day,
		Month:       dto.Month,
		Year:        dto.Year,
		Completed:   dto.Completed,
	}
	td.Normalize()
	return td
}

// ToDomainTodoList converts a list response, never returning nil.
func ToDomainTodoList(dtos []TodoDTO) []domtodo.Todo {
	todos := make([]domtodo.Todo, len(dtos))
	for i := range dtos {
		todos[i] = ToDomainTodo(&dtos[i])
	}
	return todos
}

func ToCreateTodoRequest(td *domtodo.Todo) CreateTodoRequestDTO {
	return CreateTodoRequestDTO{
		Title:       td.Title,
		Description: td.Description,
		Day:         td.Day,
		Month:       td.Month,
		Year:        td.Year,
		Completed:   td.Completed,
	}
}

// ToUpdateTodoRequest carries only the fields the patch sets.
func ToUpdateTodoRequest(p domtodo.Patch) UpdateTodoRequestDTO {
	return UpdateTodoRequestDTO{
		Title:       p.Title,
		Description: p.Description,
		Day:         p.Day,
		Month:       p.Month,
		Year:        p.Year,
		Completed:   p.Completed,
	}
}
