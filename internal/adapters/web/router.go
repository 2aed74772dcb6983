package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-todo-list/internal/adapters/http/handlers"
)

//go:embed static
var staticFS embed.FS

// NewRouter registers the page routes, the static assets and the health
// probes. Middleware is applied globally in the order given.
func NewRouter(h *Handler, healthHandler *handlers.HealthHandler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	static, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))

	r.Get("/", h.Index)
	r.Get("/groups", h.SelectGroup)

	r.Route("/todos", func(r chi.Router) {
		r.Post("/", h.SaveTodo)
		r.Get("/new", h.NewTodo)
		r.Post("/complete", h.CompleteTodo)
		r.Get("/{id}/edit", h.EditTodo)
		r.Post("/{id}/toggle", h.ToggleTodo)
		r.Post("/{id}/delete", h.DeleteTodo)
	})

	r.Post("/modal/close", h.CloseModal)
	r.Post("/reset", h.Reset)

	return r
}
