package ports

import "github.com/jsamuelsen11/go-todo-list/internal/domain/todo"

// ListItem is the display form of a todo in the main list.
type ListItem struct {
	ID        int64
	Title     string
	DueDate   string
	Completed bool
}

// Listing is what the main pane shows: a header and the selected todos.
type Listing struct {
	Header string
	Items  []ListItem
}

// Sidebar describes the group navigation and which entry is active.
type Sidebar struct {
	Groups        todo.Groups
	SelectedGroup string
	SelectedDate  string
}

// View renders controller state. Implementations must not call back into
// the controller.
type View interface {
	// RenderTodos draws the header and the list of selected todos.
	RenderTodos(listing Listing)

	// RenderGroups draws the sidebar.
	RenderGroups(sidebar Sidebar)

	// RenderModal opens the edit form, pre-filled from td, or blank when td is nil.
	RenderModal(td *todo.Todo)

	// HideModal closes the edit form.
	HideModal()

	// Alert shows a single message to the user.
	Alert(msg string)
}
