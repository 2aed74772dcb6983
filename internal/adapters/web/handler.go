// Package web is the browser front-end. Its routes translate form posts and
// links into controller calls; the controller renders into the view and every
// response is the assembled page (or a redirect back to it).
package web

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-todo-list/internal/app"
	"github.com/jsamuelsen11/go-todo-list/internal/domain"
	"github.com/jsamuelsen11/go-todo-list/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-list/internal/platform/logging"
)

// Controller is the subset of *app.Controller the routes drive.
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

// Pager writes the full page from the latest render.
type Pager interface {
	Page(w io.Writer) error
}

// Handler serves the front-end routes.
type Handler struct {
	ctrl   Controller
	pager  Pager
	logger *slog.Logger
	loaded atomic.Bool
}

// NewHandler creates a Handler. The todos are loaded on the first page view
// and again after a failed load.
func NewHandler(ctrl Controller, pager Pager, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{ctrl: ctrl, pager: pager, logger: logger}
}

// Index handles GET /.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.ensureLoaded(r.Context())
	h.writePage(w, r, http.StatusOK)
}

// SelectGroup handles GET /groups?group=&date=.
func (h *Handler) SelectGroup(w http.ResponseWriter, r *http.Request) {
	group := r.URL.Query().Get("group")
	if !todo.ValidGroup(group) {
		http.Error(w, "unknown group", http.StatusBadRequest)
		return
	}

	h.ensureLoaded(r.Context())
	h.ctrl.SelectGroup(group, r.URL.Query().Get("date"))
	h.writePage(w, r, http.StatusOK)
}

// NewTodo handles GET /todos/new.
func (h *Handler) NewTodo(w http.ResponseWriter, r *http.Request) {
	h.ctrl.NewTodo()
	h.writePage(w, r, http.StatusOK)
}

// EditTodo handles GET /todos/{id}/edit.
func (h *Handler) EditTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(w, r)
	if !ok {
		return
	}

	if err := h.ctrl.EditTodo(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "todo not found", http.StatusNotFound)
			return
		}
		h.logFailure(r, "EditTodo", err)
	}
	h.writePage(w, r, http.StatusOK)
}

// SaveTodo handles POST /todos. It creates a todo, or updates the one in edit.
func (h *Handler) SaveTodo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := app.TodoForm{
		Title:       r.PostForm.Get("title"),
		Description: r.PostForm.Get("description"),
		Day:         r.PostForm.Get("day"),
		Month:       r.PostForm.Get("month"),
		Year:        r.PostForm.Get("year"),
	}
	h.after(w, r, "SaveTodo", h.ctrl.SaveTodo(r.Context(), form))
}

// ToggleTodo handles POST /todos/{id}/toggle.
func (h *Handler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(w, r)
	if !ok {
		return
	}
	h.after(w, r, "ToggleTodo", h.ctrl.ToggleCompleted(r.Context(), id))
}

// DeleteTodo handles POST /todos/{id}/delete.
func (h *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(w, r)
	if !ok {
		return
	}
	h.after(w, r, "DeleteTodo", h.ctrl.DeleteTodo(r.Context(), id))
}

// CompleteTodo handles POST /todos/complete.
func (h *Handler) CompleteTodo(w http.ResponseWriter, r *http.Request) {
	h.after(w, r, "CompleteTodo", h.ctrl.MarkCurrentCompleted(r.Context()))
}

// CloseModal handles POST /modal/close.
func (h *Handler) CloseModal(w http.ResponseWriter, r *http.Request) {
	h.ctrl.CloseModal()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Reset handles POST /reset.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	err := h.ctrl.Reset(r.Context())
	if err == nil {
		h.loaded.Store(true)
	}
	h.after(w, r, "Reset", err)
}

// after redirects back to the page. The controller has already alerted the
// user about failures, so they are only logged here.
func (h *Handler) after(w http.ResponseWriter, r *http.Request, op string, err error) {
	if err != nil {
		h.logFailure(r, op, err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) ensureLoaded(ctx context.Context) {
	if h.loaded.Load() {
		return
	}
	if err := h.ctrl.Start(ctx); err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "loading todos failed",
			slog.String("operation", "Start"),
			slog.Any("error", err),
		)
		return
	}
	h.loaded.Store(true)
}

func (h *Handler) writePage(w http.ResponseWriter, r *http.Request, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := h.pager.Page(w); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to write page",
			slog.Any("error", err),
		)
	}
}

func (h *Handler) logFailure(r *http.Request, op string, err error) {
	logger := logging.FromContext(r.Context())
	level := slog.LevelError
	var verr *domain.ValidationError
	if errors.As(err, &verr) || errors.Is(err, app.ErrNotCreated) || errors.Is(err, domain.ErrNotFound) {
		level = slog.LevelInfo
	}
	logger.Log(r.Context(), level, "front-end action failed",
		slog.String("operation", op),
		slog.Any("error", err),
	)
}

// todoID parses the {id} path parameter, answering 400 when it is not a
// positive integer.
func todoID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		http.Error(w, "invalid todo id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// ErrorPage is the Recovery fallback for the front-end.
func ErrorPage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = io.WriteString(w, `<!DOCTYPE html><html lang="en"><body><p>Something went wrong. <a href="/">Back to the list</a></p></body></html>`)
}
