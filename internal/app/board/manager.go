// Package board keeps the front-end's copy of the todo collection together
// with its derived groups and the group currently selected for display.
package board

import (
	"slices"

	"github.com/jsamuelsen11/go-todo-list/internal/domain/todo"
)

// Op is a mutation applied to the collection.
type Op int

// Supported mutations.
const (
	OpAdd Op = iota
	OpDelete
	OpReplace
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpDelete:
		return "delete"
	case OpReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Selection names the group on display. Date is only meaningful for the
// by-date groups.
type Selection struct {
	Group string
	Date  string
}

// DefaultSelection shows every todo.
var DefaultSelection = Selection{Group: todo.GroupAll}

// Manager owns the collection and rebuilds every group after each change.
// It is not safe for concurrent use; callers serialize access.
type Manager struct {
	todos    []todo.Todo
	groups   todo.Groups
	selected Selection
}

// New builds a manager over a copy of todos with the default selection.
func New(todos []todo.Todo) *Manager {
	m := &Manager{
		todos:    slices.Clone(todos),
		selected: DefaultSelection,
	}
	m.rebuild()
	return m
}

// Update applies op. OpAdd appends td and switches the selection back to
// every todo; OpDelete removes the todo with td.ID; OpReplace swaps in td
// for the todo with the same ID and does nothing when there is none.
func (m *Manager) Update(op Op, td todo.Todo) {
	switch op {
	case OpAdd:
		m.todos = append(m.todos, td)
		m.selected = DefaultSelection
	case OpDelete:
		m.todos = slices.DeleteFunc(m.todos, func(t todo.Todo) bool { return t.ID == td.ID })
	case OpReplace:
		if i := m.index(td.ID); i >= 0 {
			m.todos[i] = td
		}
	}
	m.rebuild()
}

// Find returns the todo with id.
func (m *Manager) Find(id int64) (todo.Todo, bool) {
	if i := m.index(id); i >= 0 {
		return m.todos[i], true
	}
	return todo.Todo{}, false
}

// Todos returns a copy of the collection in order.
func (m *Manager) Todos() []todo.Todo {
	return slices.Clone(m.todos)
}

// Groups returns the derived groups.
func (m *Manager) Groups() todo.Groups {
	return m.groups
}

// Selected returns the current selection.
func (m *Manager) Selected() Selection {
	return m.selected
}

// SetSelected changes the selection. Unknown group names fall back to the
// default selection and the date is dropped for groups not keyed by date.
func (m *Manager) SetSelected(group, date string) {
	switch {
	case !todo.ValidGroup(group):
		m.selected = DefaultSelection
	case todo.IsDateGroup(group):
		m.selected = Selection{Group: group, Date: date}
	default:
		m.selected = Selection{Group: group}
	}
}

// SelectedTodos resolves the selection against the current groups. A date
// that no longer has any todos yields an empty list.
func (m *Manager) SelectedTodos() []todo.Todo {
	list := m.groups.List(m.selected.Group, m.selected.Date)
	if list == nil {
		return []todo.Todo{}
	}
	return list
}

func (m *Manager) index(id int64) int {
	return slices.IndexFunc(m.todos, func(t todo.Todo) bool { return t.ID == id })
}

func (m *Manager) rebuild() {
	m.groups = todo.BuildGroups(m.todos)
}
