package app

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/jsamuelsen11/go-todo-list/internal/app/board"
	"github.com/jsamuelsen11/go-todo-list/internal/domain"
	"github.com/jsamuelsen11/go-todo-list/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-list/internal/ports"
)

// User-facing alert messages.
const (
	MsgRequestFailed = "Sorry, there was an error with your request"
	MsgNotCreated    = "Cannot mark as complete as item has not been created yet!"
)

// Placeholder values that date selects submit when nothing was chosen.
const (
	PlaceholderDay   = "Day"
	PlaceholderMonth = "Month"
	PlaceholderYear  = "Year"
)

// Group headers.
const (
	HeaderAll  = "Tasks"
	HeaderDone = "Completed"
)

// ErrNotCreated is returned when an action needs a todo in edit but there is none.
var ErrNotCreated = errors.New("todo has not been created yet")

// TodoForm is the raw content of the add/edit form.
type TodoForm struct {
	Title       string
	Description string
	Day         string
	Month       string
	Year        string
}

// FormatForServer replaces placeholder and empty date values with the
// "unset" sentinels the API expects.
func FormatForServer(f TodoForm) TodoForm {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.Day = sentinel(f.Day, PlaceholderDay, todo.NoDay)
	f.Month = sentinel(f.Month, PlaceholderMonth, todo.NoMonth)
	f.Year = sentinel(f.Year, PlaceholderYear, todo.NoYear)
	return f
}

func sentinel(v, placeholder, unset string) string {
	v = strings.TrimSpace(v)
	if v == "" || v == placeholder {
		return unset
	}
	return v
}

func (f TodoForm) patch() todo.Patch {
	return todo.Patch{
		Title:       &f.Title,
		Description: &f.Description,
		Day:         &f.Day,
		Month:       &f.Month,
		Year:        &f.Year,
	}
}

// Controller coordinates the gateway, the board and a view. Every exported
// method takes the controller lock, so at most one gateway request is in
// flight and renders never interleave.
type Controller struct {
	mu      sync.Mutex
	gateway ports.TodoGateway
	view    ports.View
	logger  *slog.Logger
	board   *board.Manager
	current *todo.Todo
}

// NewController creates a Controller with an empty board. Call Start to load
// the todos. A nil logger discards output.
func NewController(gateway ports.TodoGateway, view ports.View, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		gateway: gateway,
		view:    view,
		logger:  logger,
		board:   board.New(nil),
	}
}

// Start loads every todo and renders the list and the sidebar.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.reload(ctx, "Start")
}

// Listing returns the header and the selected todos, incomplete first.
func (c *Controller) Listing() ports.Listing {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.listing()
}

// Header returns the title of the selected group.
func (c *Controller) Header() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.header()
}

// Sidebar returns the groups and the active selection.
func (c *Controller) Sidebar() ports.Sidebar {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.sidebar()
}

// Current returns a copy of the todo in edit, or nil when the form is blank.
func (c *Controller) Current() *todo.Todo {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return nil
	}
	td := *c.current
	return &td
}

// SaveTodo submits the form: it updates the todo in edit, or creates a new
// one when there is none.
func (c *Controller) SaveTodo(ctx context.Context, form TodoForm) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil {
		return c.update(ctx, form)
	}
	return c.add(ctx, form)
}

// AddTodo validates the form and creates a todo. The new todo is appended
// and the selection returns to every todo.
func (c *Controller) AddTodo(ctx context.Context, form TodoForm) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.add(ctx, form)
}

// UpdateTodo validates the form and saves it over the todo in edit.
func (c *Controller) UpdateTodo(ctx context.Context, form TodoForm) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return ErrNotCreated
	}
	return c.update(ctx, form)
}

// DeleteTodo deletes a todo and re-renders.
func (c *Controller) DeleteTodo(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.gateway.DeleteTodo(ctx, id); err != nil {
		return c.fail(ctx, "DeleteTodo", err, slog.Int64("id", id))
	}

	c.board.Update(board.OpDelete, todo.Todo{ID: id})
	if c.current != nil && c.current.ID == id {
		c.current = nil
		c.view.HideModal()
	}
	c.render()
	return nil
}

// ToggleCompleted flips the completion flag of a todo.
func (c *Controller) ToggleCompleted(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	td, ok := c.board.Find(id)
	if !ok {
		return fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
	}

	completed := !td.Completed
	return c.replace(ctx, "ToggleCompleted", id, todo.Patch{Completed: &completed})
}

// MarkCurrentCompleted completes the todo in edit and closes the form. With
// a blank form it alerts the user instead.
func (c *Controller) MarkCurrentCompleted(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		c.view.Alert(MsgNotCreated)
		return ErrNotCreated
	}

	completed := true
	if err := c.replace(ctx, "MarkCurrentCompleted", c.current.ID, todo.Patch{Completed: &completed}); err != nil {
		return err
	}
	c.current = nil
	c.view.HideModal()
	return nil
}

// EditTodo opens the form for an existing todo.
func (c *Controller) EditTodo(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	td, ok := c.board.Find(id)
	if !ok {
		return fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
	}

	c.current = &td
	shown := td
	c.view.RenderModal(&shown)
	return nil
}

// NewTodo opens a blank form.
func (c *Controller) NewTodo() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = nil
	c.view.RenderModal(nil)
}

// CloseModal discards the form.
func (c *Controller) CloseModal() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = nil
	c.view.HideModal()
}

// SelectGroup changes the displayed group and re-renders.
func (c *Controller) SelectGroup(group, date string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.board.SetSelected(group, date)
	c.render()
}

// Reset restores the seed todos on the server and reloads them.
func (c *Controller) Reset(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.gateway.Reset(ctx); err != nil {
		return c.fail(ctx, "Reset", err)
	}
	c.current = nil
	c.view.HideModal()
	return c.reload(ctx, "Reset")
}

func (c *Controller) add(ctx context.Context, form TodoForm) error {
	form = FormatForServer(form)
	if err := c.checkForm(form); err != nil {
		return err
	}

	td := &todo.Todo{
		Title:       form.Title,
		Description: form.Description,
		Day:         form.Day,
		Month:       form.Month,
		Year:        form.Year,
	}
	created, err := c.gateway.CreateTodo(ctx, td)
	if err != nil {
		return c.fail(ctx, "AddTodo", err)
	}

	c.board.Update(board.OpAdd, *created)
	c.current = nil
	c.view.HideModal()
	c.render()
	return nil
}

func (c *Controller) update(ctx context.Context, form TodoForm) error {
	form = FormatForServer(form)
	if err := c.checkForm(form); err != nil {
		return err
	}

	if err := c.replace(ctx, "UpdateTodo", c.current.ID, form.patch()); err != nil {
		return err
	}
	c.current = nil
	c.view.HideModal()
	return nil
}

// replace sends patch for id and swaps the response into the board.
func (c *Controller) replace(ctx context.Context, op string, id int64, patch todo.Patch) error {
	updated, err := c.gateway.UpdateTodo(ctx, id, patch)
	if err != nil {
		return c.fail(ctx, op, err, slog.Int64("id", id))
	}

	c.board.Update(board.OpReplace, *updated)
	c.render()
	return nil
}

func (c *Controller) reload(ctx context.Context, op string) error {
	todos, err := c.gateway.ListTodos(ctx)
	if err != nil {
		return c.fail(ctx, op, err)
	}

	selected := c.board.Selected()
	c.board = board.New(todos)
	c.board.SetSelected(selected.Group, selected.Date)
	c.render()
	return nil
}

// checkForm alerts the first form problem. The form stays open and is
// redrawn with the submitted values.
func (c *Controller) checkForm(form TodoForm) error {
	err := todo.ValidateForm(form.Title, form.Description)
	if err == nil {
		return nil
	}

	shown := todo.Todo{
		Title:       form.Title,
		Description: form.Description,
		Day:         form.Day,
		Month:       form.Month,
		Year:        form.Year,
	}
	if c.current != nil {
		shown.ID = c.current.ID
		shown.Completed = c.current.Completed
	}
	c.view.RenderModal(&shown)

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		c.view.Alert(verr.First("title", "description"))
	}
	return err
}

// fail logs err and shows the generic request alert.
func (c *Controller) fail(ctx context.Context, op string, err error, attrs ...any) error {
	args := append([]any{slog.String("operation", op)}, attrs...)
	args = append(args, slog.Any("error", err))
	c.logger.ErrorContext(ctx, "todo request failed", args...)

	c.view.Alert(MsgRequestFailed)
	return fmt.Errorf("%s: %w", op, err)
}

func (c *Controller) render() {
	c.view.RenderTodos(c.listing())
	c.view.RenderGroups(c.sidebar())
}

func (c *Controller) listing() ports.Listing {
	selected := slices.Clone(c.board.SelectedTodos())
	slices.SortStableFunc(selected, func(a, b todo.Todo) int {
		return cmp.Compare(boolRank(a.Completed), boolRank(b.Completed))
	})

	items := make([]ports.ListItem, 0, len(selected))
	for _, td := range selected {
		items = append(items, ports.ListItem{
			ID:        td.ID,
			Title:     td.Title,
			DueDate:   td.DueDate(),
			Completed: td.Completed,
		})
	}
	return ports.Listing{Header: c.header(), Items: items}
}

func (c *Controller) header() string {
	sel := c.board.Selected()
	switch sel.Group {
	case todo.GroupDone:
		return HeaderDone
	case todo.GroupByDate, todo.GroupDoneByDate:
		return sel.Date
	default:
		return HeaderAll
	}
}

func (c *Controller) sidebar() ports.Sidebar {
	sel := c.board.Selected()
	return ports.Sidebar{
		Groups:        c.board.Groups(),
		SelectedGroup: sel.Group,
		SelectedDate:  sel.Date,
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
