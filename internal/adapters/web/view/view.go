// Package view renders the todo page as HTML fragments. The Renderer is the
// web front-end's ports.View: the controller pushes state into it and the
// HTTP handler serves the assembled page.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/jsamuelsen11/go-todo-list/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-list/internal/ports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// First and last year offered by the year select.
const (
	FirstYear = 2014
	LastYear  = 2035
)

// Document is a snapshot of every rendered fragment.
type Document struct {
	Header    template.HTML
	List      template.HTML
	Sidebar   template.HTML
	Modal     template.HTML
	ModalOpen bool
	Alert     string
}

// Form is the data behind the modal. Unset date parts are empty so that the
// placeholder option is selected.
type Form struct {
	Title       string
	Description string
	Day         string
	Month       string
	Year        string
	Editing     bool
	Days        []string
	Months      []string
	Years       []string
}

// Renderer implements ports.View. It is safe for concurrent use.
type Renderer struct {
	tmpl   *template.Template
	logger *slog.Logger

	mu  sync.Mutex
	doc Document
}

var _ ports.View = (*Renderer)(nil)

// New parses the embedded templates. A nil logger discards output.
func New(logger *slog.Logger) (*Renderer, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	tmpl, err := template.New("todo").Option("missingkey=error").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &Renderer{tmpl: tmpl, logger: logger}, nil
}

// RenderTodos renders the header and the list.
func (r *Renderer) RenderTodos(listing ports.Listing) {
	header := r.execute("header", listing)
	list := r.execute("list", listing)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc.Header = header
	r.doc.List = list
}

// RenderGroups renders the sidebar.
func (r *Renderer) RenderGroups(sidebar ports.Sidebar) {
	html := r.execute("sidebar", sidebar)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc.Sidebar = html
}

// RenderModal opens the form, filled from td when it is not nil.
func (r *Renderer) RenderModal(td *todo.Todo) {
	html := r.execute("modal", newForm(td))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc.Modal = html
	r.doc.ModalOpen = true
}

// HideModal closes the form.
func (r *Renderer) HideModal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc.Modal = ""
	r.doc.ModalOpen = false
}

// Alert sets the message shown on the next page. A later alert replaces it.
func (r *Renderer) Alert(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc.Alert = msg
}

// Document returns the current fragments.
func (r *Renderer) Document() Document {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doc
}

// Page writes the full page and clears the alert, so each alert is shown once.
func (r *Renderer) Page(w io.Writer) error {
	r.mu.Lock()
	doc := r.doc
	r.doc.Alert = ""
	r.mu.Unlock()

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", doc); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// execute renders a fragment. The templates are fixed, so a failure is a
// programming error: it is logged and the fragment is left empty.
func (r *Renderer) execute(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		r.logger.Error("failed to render fragment",
			slog.String("operation", "view.execute"),
			slog.String("template", name),
			slog.Any("error", err),
		)
		return ""
	}
	return template.HTML(buf.String()) //nolint:gosec // output of html/template is already escaped
}

func newForm(td *todo.Todo) Form {
	f := Form{
		Days:   numbers(1, 31, 2),
		Months: numbers(1, 12, 2),
		Years:  numbers(FirstYear, LastYear, 4),
	}
	if td == nil {
		return f
	}

	f.Title = td.Title
	f.Description = td.Description
	f.Editing = td.ID != 0
	f.Day = unset(td.Day, todo.NoDay)
	f.Month = unset(td.Month, todo.NoMonth)
	f.Year = unset(td.Year, todo.NoYear)
	if f.Year != "" && !slices.Contains(f.Years, f.Year) {
		f.Years = append(f.Years, f.Year)
	}
	return f
}

func unset(v, sentinel string) string {
	if v == sentinel {
		return ""
	}
	return v
}

// numbers returns lo..hi zero-padded to width.
func numbers(lo, hi, width int) []string {
	out := make([]string, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		out = append(out, fmt.Sprintf("%0*d", width, n))
	}
	return out
}
