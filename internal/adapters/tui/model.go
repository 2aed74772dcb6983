// Package tui is the terminal front-end: a bubbletea program driving the same
// controller as the web front-end. Gateway calls run as tea commands so the
// UI stays responsive; the controller renders into a Screen that View reads.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/go-todo-list/internal/app"
	"github.com/jsamuelsen11/go-todo-list/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-list/internal/ports"
)

// Controller is the subset of *app.Controller the terminal drives.
type Controller interface {
	Start(ctx context.Context) error
	SelectGroup(group, date string)
	NewTodo()
	EditTodo(id int64) error
	CloseModal()
	SaveTodo(ctx context.Context, form app.TodoForm) error
	ToggleCompleted(ctx context.Context, id int64) error
	DeleteTodo(ctx context.Context, id int64) error
	MarkCurrentCompleted(ctx context.Context) error
	Reset(ctx context.Context) error
}

// DefaultRequestTimeout bounds each gateway call started from a key press.
const DefaultRequestTimeout = 10 * time.Second

// Form field order.
const (
	fieldTitle = iota
	fieldDescription
	fieldDay
	fieldMonth
	fieldYear
	fieldCount
)

// doneMsg reports a finished controller call.
type doneMsg struct {
	op  string
	err error
}

// entry is one line of the sidebar.
type entry struct {
	label string
	group string
	date  string
	count int
	dated bool
}

// Model is the bubbletea model.
type Model struct {
	ctrl    Controller
	screen  *Screen
	keys    KeyMap
	logger  *slog.Logger
	timeout time.Duration

	inputs  []textinput.Model
	focus   int
	editing bool
	busy    bool
	cursor  int
	width   int
	height  int
}

// New builds the model. A nil logger discards output.
func New(ctrl Controller, screen *Screen, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Cursor.SetMode(cursor.CursorStatic)
		inputs[i] = ti
	}
	inputs[fieldTitle].Placeholder = "Item 1"
	inputs[fieldTitle].CharLimit = todo.MaxTitleLength + 10
	inputs[fieldDescription].Placeholder = "Description"
	inputs[fieldDescription].CharLimit = todo.MaxDescriptionLength + 10
	inputs[fieldDay].Placeholder = app.PlaceholderDay
	inputs[fieldDay].CharLimit = 2
	inputs[fieldMonth].Placeholder = app.PlaceholderMonth
	inputs[fieldMonth].CharLimit = 2
	inputs[fieldYear].Placeholder = app.PlaceholderYear
	inputs[fieldYear].CharLimit = 4

	return Model{
		ctrl:    ctrl,
		screen:  screen,
		keys:    DefaultKeyMap(),
		logger:  logger,
		timeout: DefaultRequestTimeout,
		inputs:  inputs,
		width:   80,
		height:  24,
	}
}

// WithRequestTimeout returns a copy of m whose controller calls give up
// after d.
func (m Model) WithRequestTimeout(d time.Duration) Model {
	if d > 0 {
		m.timeout = d
	}
	return m
}

// Init loads the todos.
func (m Model) Init() tea.Cmd {
	return m.run("Start", m.ctrl.Start)
}

// Update handles key presses, window resizes and finished commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case doneMsg:
		m.busy = false
		if msg.err != nil {
			m.logger.Debug("terminal action failed", slog.String("operation", msg.op), slog.Any("error", msg.err))
		}
		m.sync()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.screen.clearAlert()
		if m.editing {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.screen.snapshot()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextGroup):
		m.moveGroup(state.sidebar, 1)
	case key.Matches(msg, m.keys.PrevGroup):
		m.moveGroup(state.sidebar, -1)

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(state.listing.Items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Add) && !m.busy:
		m.ctrl.NewTodo()
		m.openForm()

	case key.Matches(msg, m.keys.Edit) && !m.busy:
		if item, ok := m.selected(state); ok {
			if err := m.ctrl.EditTodo(item.ID); err == nil {
				m.openForm()
			}
		}

	case key.Matches(msg, m.keys.Toggle):
		if item, ok := m.selected(state); ok {
			return m.start("ToggleCompleted", func(ctx context.Context) error {
				return m.ctrl.ToggleCompleted(ctx, item.ID)
			})
		}
	case key.Matches(msg, m.keys.Delete):
		if item, ok := m.selected(state); ok {
			return m.start("DeleteTodo", func(ctx context.Context) error {
				return m.ctrl.DeleteTodo(ctx, item.ID)
			})
		}
	case key.Matches(msg, m.keys.Complete):
		return m.start("MarkCurrentCompleted", m.ctrl.MarkCurrentCompleted)
	case key.Matches(msg, m.keys.Reset):
		return m.start("Reset", m.ctrl.Reset)
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		if m.busy {
			return m, nil
		}
		m.ctrl.CloseModal()
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.Save):
		form := m.form()
		return m.start("SaveTodo", func(ctx context.Context) error {
			return m.ctrl.SaveTodo(ctx, form)
		})

	case key.Matches(msg, m.keys.FormComplete):
		return m.start("MarkCurrentCompleted", m.ctrl.MarkCurrentCompleted)

	case key.Matches(msg, m.keys.NextField):
		return m, m.focusField((m.focus + 1) % fieldCount)
	case key.Matches(msg, m.keys.PrevField):
		return m, m.focusField((m.focus + fieldCount - 1) % fieldCount)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// start marks the model busy and runs fn as a command. Keys that start a
// request are ignored while another one is in flight.
func (m Model) start(op string, fn func(context.Context) error) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	return m, m.run(op, fn)
}

func (m Model) run(op string, fn func(context.Context) error) tea.Cmd {
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return doneMsg{op: op, err: fn(ctx)}
	}
}

// sync follows the screen after the controller ran: the form is shown while
// the controller keeps it open and the cursor stays inside the list.
func (m *Model) sync() {
	state := m.screen.snapshot()
	if !state.modalOpen {
		m.editing = false
		for i := range m.inputs {
			m.inputs[i].Blur()
		}
	}
	if m.cursor >= len(state.listing.Items) {
		m.cursor = max(len(state.listing.Items)-1, 0)
	}
}

func (m *Model) openForm() {
	state := m.screen.snapshot()
	if !state.modalOpen {
		return
	}

	values := [fieldCount]string{}
	if td := state.modal; td != nil {
		values = [fieldCount]string{
			td.Title,
			td.Description,
			blankIf(td.Day, todo.NoDay),
			blankIf(td.Month, todo.NoMonth),
			blankIf(td.Year, todo.NoYear),
		}
	}
	for i := range m.inputs {
		m.inputs[i].SetValue(values[i])
	}
	m.editing = true
	m.focusField(fieldTitle)
}

func (m *Model) focusField(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

func (m Model) form() app.TodoForm {
	return app.TodoForm{
		Title:       m.inputs[fieldTitle].Value(),
		Description: m.inputs[fieldDescription].Value(),
		Day:         m.inputs[fieldDay].Value(),
		Month:       m.inputs[fieldMonth].Value(),
		Year:        m.inputs[fieldYear].Value(),
	}
}

func (m *Model) moveGroup(sidebar ports.Sidebar, step int) {
	all := entries(sidebar.Groups)
	current := 0
	for i, e := range all {
		if e.group == sidebar.SelectedGroup && (!e.dated || e.date == sidebar.SelectedDate) {
			current = i
			break
		}
	}

	next := all[(current+step+len(all))%len(all)]
	m.ctrl.SelectGroup(next.group, next.date)
	m.cursor = 0
}

func (m Model) selected(state screenState) (ports.ListItem, bool) {
	items := state.listing.Items
	if m.cursor < 0 || m.cursor >= len(items) {
		return ports.ListItem{}, false
	}
	return items[m.cursor], true
}

// entries lists the sidebar lines in display order.
func entries(g todo.Groups) []entry {
	out := []entry{{label: "All Todos", group: todo.GroupAll, count: len(g.All)}}
	for _, dg := range g.ByDate {
		out = append(out, entry{label: dg.Label, group: todo.GroupByDate, date: dg.Label, count: len(dg.Todos), dated: true})
	}
	out = append(out, entry{label: "Completed", group: todo.GroupDone, count: len(g.Done)})
	for _, dg := range g.DoneByDate {
		out = append(out, entry{label: dg.Label, group: todo.GroupDoneByDate, date: dg.Label, count: len(dg.Todos), dated: true})
	}
	return out
}

// View draws the sidebar, the list, the form when open and the status line.
func (m Model) View() string {
	state := m.screen.snapshot()

	main := m.viewList(state)
	if m.editing {
		main = lipgloss.JoinVertical(lipgloss.Left, main, m.viewForm(state))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(state.sidebar), "  ", main)
	return lipgloss.JoinVertical(lipgloss.Left, body, "", m.viewStatus(state))
}

func (m Model) viewSidebar(sidebar ports.Sidebar) string {
	lines := make([]string, 0)
	for _, e := range entries(sidebar.Groups) {
		style := groupStyle
		if e.dated {
			style = dateStyle
		}
		text := fmt.Sprintf("%s (%d)", e.label, e.count)
		if e.group == sidebar.SelectedGroup && (!e.dated || e.date == sidebar.SelectedDate) {
			text = activeGroupStyle.Render("> " + text)
		}
		lines = append(lines, style.Render(text))
	}
	return sidebarStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) viewList(state screenState) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(state.listing.Header + " " + countStyle.Render(strconv.Itoa(len(state.listing.Items)))))
	b.WriteString("\n")

	if len(state.listing.Items) == 0 {
		b.WriteString(itemStyle.Render(helpStyle.Render("nothing here")))
		return b.String()
	}

	for i, item := range state.listing.Items {
		check := "[ ]"
		if item.Completed {
			check = "[x]"
		}
		text := item.Title + " - " + item.DueDate
		if item.Completed {
			text = completedStyle.Render(text)
		}
		line := check + " " + text
		if i == m.cursor && !m.editing {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(itemStyle.Render(line))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m Model) viewForm(state screenState) string {
	title := "New todo"
	if state.modal != nil && state.modal.ID != 0 {
		title = "Edit todo"
	}

	labels := [fieldCount]string{"Title", "Description", "Day", "Month", "Year"}
	lines := []string{headerStyle.Render(title)}
	for i, in := range m.inputs {
		lines = append(lines, fmt.Sprintf("%-12s %s", labels[i], in.View()))
	}
	return formStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) viewStatus(state screenState) string {
	if state.alert != "" {
		return alertStyle.Render(state.alert)
	}
	if m.busy {
		return helpStyle.Render("working...")
	}
	k := m.keys
	if m.editing {
		return helpStyle.Render(helpLine(k.Save, k.Cancel, k.NextField, k.FormComplete))
	}
	return helpStyle.Render(helpLine(k.NextGroup, k.Down, k.Up, k.Toggle, k.Add, k.Edit, k.Delete, k.Complete, k.Reset, k.Quit))
}

func blankIf(v, sentinel string) string {
	if v == sentinel {
		return ""
	}
	return v
}
