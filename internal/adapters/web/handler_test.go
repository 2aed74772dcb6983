package web_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-todo-list/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-todo-list/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-todo-list/internal/adapters/web"
	"github.com/jsamuelsen11/go-todo-list/internal/adapters/web/view"
	"github.com/jsamuelsen11/go-todo-list/internal/app"
	"github.com/jsamuelsen11/go-todo-list/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-list/mocks"
)

type frontEnd struct {
	router  http.Handler
	gateway *mocks.MockTodoGateway
}

func seedTodos() []todo.Todo {
	return []todo.Todo{
		{ID: 1, Title: "Buy milk", Day: todo.NoDay, Month: "03", Year: "2025"},
		{ID: 2, Title: "Pay rent", Day: "01", Month: "04", Year: "2025", Completed: true},
	}
}

func newFrontEnd(t *testing.T) *frontEnd {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	gw := mocks.NewMockTodoGateway(t)
	renderer, err := view.New(logger)
	if err != nil {
		t.Fatalf("view.New() error = %v", err)
	}
	ctrl := app.NewController(gw, renderer, logger)

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{"todo-api": nil}).Maybe()

	h := web.NewHandler(ctrl, renderer, logger)
	router := web.NewRouter(h, handlers.NewHealthHandler(registry), middleware.Recovery(logger, http.HandlerFunc(web.ErrorPage)))
	return &frontEnd{router: router, gateway: gw}
}

// loaded returns a front-end whose todos were fetched by a first page view.
func loaded(t *testing.T) *frontEnd {
	t.Helper()

	fe := newFrontEnd(t)
	fe.gateway.EXPECT().ListTodos(mock.Anything).Return(seedTodos(), nil).Once()
	if rec := fe.do(t, http.MethodGet, "/", nil); rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d, want 200", rec.Code)
	}
	return fe
}

func (fe *frontEnd) do(t *testing.T, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader = http.NoBody
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequestWithContext(context.Background(), method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	fe.router.ServeHTTP(rec, req)
	return rec
}

func (fe *frontEnd) page(t *testing.T) string {
	t.Helper()

	rec := fe.do(t, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d, want 200", rec.Code)
	}
	return rec.Body.String()
}

func requireRedirect(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
}

func TestIndex_LoadsOnce(t *testing.T) {
	t.Parallel()

	fe := loaded(t)

	body := fe.page(t)
	for _, want := range []string{"<h1>Tasks</h1>", "Buy milk - 03/25", "Pay rent - 04/25", "All Todos"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	// Incomplete todos are listed first.
	if strings.Index(body, "Buy milk") > strings.Index(body, "Pay rent") {
		t.Error("completed todo listed before incomplete one")
	}
}

func TestIndex_ContentType(t *testing.T) {
	t.Parallel()

	fe := loaded(t)
	rec := fe.do(t, http.MethodGet, "/", nil)

	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q, want text/html; charset=utf-8", ct)
	}
}

func TestIndex_LoadFailureAlertsAndRetries(t *testing.T) {
	t.Parallel()

	fe := newFrontEnd(t)
	fe.gateway.EXPECT().ListTodos(mock.Anything).Return(nil, errors.New("connection refused")).Once()

	body := fe.page(t)
	if !strings.Contains(body, app.MsgRequestFailed) {
		t.Errorf("page missing alert %q", app.MsgRequestFailed)
	}

	fe.gateway.EXPECT().ListTodos(mock.Anything).Return(seedTodos(), nil).Once()
	if body := fe.page(t); !strings.Contains(body, "Buy milk") {
		t.Error("second page view did not load the todos")
	}
}

func TestSelectGroup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantHeader string
		wantItems  []string
		skipItems  []string
	}{
		{
			name:       "completed",
			target:     "/groups?group=done",
			wantStatus: http.StatusOK,
			wantHeader: "<h1>Completed</h1>",
			wantItems:  []string{"Pay rent"},
			skipItems:  []string{"Buy milk - "},
		},
		{
			name:       "date group",
			target:     "/groups?group=todos_by_date&date=03%2F25",
			wantStatus: http.StatusOK,
			wantHeader: "<h1>03/25</h1>",
			wantItems:  []string{"Buy milk - 03/25"},
			skipItems:  []string{"Pay rent - "},
		},
		{
			name:       "unknown group",
			target:     "/groups?group=archive",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fe := loaded(t)
			rec := fe.do(t, http.MethodGet, tt.target, nil)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			body := rec.Body.String()
			if !strings.Contains(body, tt.wantHeader) {
				t.Errorf("page missing header %q", tt.wantHeader)
			}
			for _, want := range tt.wantItems {
				if !strings.Contains(body, want) {
					t.Errorf("page missing %q", want)
				}
			}
			for _, skip := range tt.skipItems {
				if strings.Contains(body, skip) {
					t.Errorf("page contains %q", skip)
				}
			}
		})
	}
}

func TestNewTodo_CreatesOnSave(t *testing.T) {
	t.Parallel()

	fe := loaded(t)

	if body := fe.do(t, http.MethodGet, "/todos/new", nil).Body.String(); !strings.Contains(body, `id="modal"`) {
		t.Fatal("GET /todos/new did not open the modal")
	}

	fe.gateway.EXPECT().CreateTodo(mock.Anything, mock.MatchedBy(func(td *todo.Todo) bool {
		return td.Title == "Walk dog" && td.Day == todo.NoDay && td.Month == "05" && td.Year == todo.NoYear
	})).Return(&todo.Todo{ID: 3, Title: "Walk dog", Day: todo.NoDay, Month: "05", Year: todo.NoYear}, nil).Once()

	rec := fe.do(t, http.MethodPost, "/todos", url.Values{
		"title": {"Walk dog"}, "description": {""}, "day": {"Day"}, "month": {"05"}, "year": {"Year"},
	})
	requireRedirect(t, rec)

	body := fe.page(t)
	if !strings.Contains(body, "Walk dog - No Due Date") {
		t.Error("page missing the created todo")
	}
	if strings.Contains(body, `id="modal"`) {
		t.Error("modal still open after a successful save")
	}
}

func TestSaveTodo_InvalidTitleKeepsModalOpen(t *testing.T) {
	t.Parallel()

	fe := loaded(t)
	fe.do(t, http.MethodGet, "/todos/new", nil)

	rec := fe.do(t, http.MethodPost, "/todos", url.Values{"title": {"ab"}})
	requireRedirect(t, rec)

	body := fe.page(t)
	if !strings.Contains(body, `id="modal"`) {
		t.Error("modal closed after a rejected form")
	}
	if !strings.Contains(body, todo.MsgTitleTooShort) {
		t.Errorf("page missing alert %q", todo.MsgTitleTooShort)
	}
}

func TestSaveTodo_InvalidFormKeepsInput(t *testing.T) {
	t.Parallel()

	fe := loaded(t)
	fe.do(t, http.MethodGet, "/todos/new", nil)

	rec := fe.do(t, http.MethodPost, "/todos", url.Values{
		"title": {"ab"}, "description": {"my typed description"}, "day": {"Day"}, "month": {"05"}, "year": {"Year"},
	})
	requireRedirect(t, rec)

	body := fe.page(t)
	for _, want := range []string{`value="ab"`, "my typed description", `<option value="05" selected>05</option>`, `<option selected>Day</option>`} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q after a rejected form", want)
		}
	}
	if !strings.Contains(body, todo.MsgTitleTooShort) {
		t.Errorf("page missing alert %q", todo.MsgTitleTooShort)
	}
}

func TestEditTodo_UpdatesOnSave(t *testing.T) {
	t.Parallel()

	fe := loaded(t)

	body := fe.do(t, http.MethodGet, "/todos/1/edit", nil).Body.String()
	if !strings.Contains(body, `value="Buy milk"`) {
		t.Fatal("edit modal not filled from the todo")
	}

	fe.gateway.EXPECT().UpdateTodo(mock.Anything, int64(1), mock.MatchedBy(func(p todo.Patch) bool {
		return p.Title != nil && *p.Title == "Buy oat milk" && p.Completed == nil
	})).Return(&todo.Todo{ID: 1, Title: "Buy oat milk", Day: todo.NoDay, Month: "03", Year: "2025"}, nil).Once()

	rec := fe.do(t, http.MethodPost, "/todos", url.Values{
		"title": {"Buy oat milk"}, "day": {"Day"}, "month": {"03"}, "year": {"2025"},
	})
	requireRedirect(t, rec)

	if body := fe.page(t); !strings.Contains(body, "Buy oat milk - 03/25") {
		t.Error("page missing the updated todo")
	}
}

func TestEditTodo_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{name: "unknown id", target: "/todos/99/edit", wantStatus: http.StatusNotFound},
		{name: "non numeric id", target: "/todos/abc/edit", wantStatus: http.StatusBadRequest},
		{name: "zero id", target: "/todos/0/edit", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fe := loaded(t)
			if rec := fe.do(t, http.MethodGet, tt.target, nil); rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestToggleTodo(t *testing.T) {
	t.Parallel()

	fe := loaded(t)
	fe.gateway.EXPECT().UpdateTodo(mock.Anything, int64(1), mock.MatchedBy(func(p todo.Patch) bool {
		return p.Completed != nil && *p.Completed && p.Title == nil
	})).Return(&todo.Todo{ID: 1, Title: "Buy milk", Day: todo.NoDay, Month: "03", Year: "2025", Completed: true}, nil).Once()

	requireRedirect(t, fe.do(t, http.MethodPost, "/todos/1/toggle", nil))

	body := fe.do(t, http.MethodGet, "/groups?group=done", nil).Body.String()
	if !strings.Contains(body, "Buy milk - 03/25") {
		t.Error("toggled todo missing from the completed group")
	}
}

func TestDeleteTodo(t *testing.T) {
	t.Parallel()

	fe := loaded(t)
	fe.gateway.EXPECT().DeleteTodo(mock.Anything, int64(2)).Return(nil).Once()

	requireRedirect(t, fe.do(t, http.MethodPost, "/todos/2/delete", nil))

	if body := fe.page(t); strings.Contains(body, "Pay rent") {
		t.Error("deleted todo still listed")
	}
}

func TestDeleteTodo_GatewayFailureAlerts(t *testing.T) {
	t.Parallel()

	fe := loaded(t)
	fe.gateway.EXPECT().DeleteTodo(mock.Anything, int64(2)).Return(errors.New("boom")).Once()

	requireRedirect(t, fe.do(t, http.MethodPost, "/todos/2/delete", nil))

	body := fe.page(t)
	if !strings.Contains(body, app.MsgRequestFailed) {
		t.Errorf("page missing alert %q", app.MsgRequestFailed)
	}
	if !strings.Contains(body, "Pay rent") {
		t.Error("todo removed although the delete failed")
	}
}

func TestCompleteTodo(t *testing.T) {
	t.Parallel()

	t.Run("without a todo in edit", func(t *testing.T) {
		t.Parallel()

		fe := loaded(t)
		requireRedirect(t, fe.do(t, http.MethodPost, "/todos/complete", nil))

		if body := fe.page(t); !strings.Contains(body, app.MsgNotCreated) {
			t.Errorf("page missing alert %q", app.MsgNotCreated)
		}
	})

	t.Run("with a todo in edit", func(t *testing.T) {
		t.Parallel()

		fe := loaded(t)
		fe.do(t, http.MethodGet, "/todos/1/edit", nil)
		fe.gateway.EXPECT().UpdateTodo(mock.Anything, int64(1), mock.MatchedBy(func(p todo.Patch) bool {
			return p.Completed != nil && *p.Completed
		})).Return(&todo.Todo{ID: 1, Title: "Buy milk", Day: todo.NoDay, Month: "03", Year: "2025", Completed: true}, nil).Once()

		requireRedirect(t, fe.do(t, http.MethodPost, "/todos/complete", nil))

		if body := fe.page(t); strings.Contains(body, `id="modal"`) {
			t.Error("modal still open after completing the todo")
		}
	})
}

func TestCloseModal(t *testing.T) {
	t.Parallel()

	fe := loaded(t)
	fe.do(t, http.MethodGet, "/todos/new", nil)

	requireRedirect(t, fe.do(t, http.MethodPost, "/modal/close", nil))

	if body := fe.page(t); strings.Contains(body, `id="modal"`) {
		t.Error("modal still open after close")
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	fe := loaded(t)
	fe.gateway.EXPECT().Reset(mock.Anything).Return(nil).Once()
	fe.gateway.EXPECT().ListTodos(mock.Anything).Return([]todo.Todo{
		{ID: 1, Title: "Seeded", Day: todo.NoDay, Month: todo.NoMonth, Year: todo.NoYear},
	}, nil).Once()

	requireRedirect(t, fe.do(t, http.MethodPost, "/reset", nil))

	body := fe.page(t)
	if !strings.Contains(body, "Seeded - No Due Date") || strings.Contains(body, "Buy milk") {
		t.Error("page does not show the reset collection")
	}
}

func TestRouter_Static(t *testing.T) {
	t.Parallel()

	fe := newFrontEnd(t)
	rec := fe.do(t, http.MethodGet, "/static/app.css", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "#sidebar") {
		t.Error("stylesheet body missing")
	}
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	fe := newFrontEnd(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		if rec := fe.do(t, http.MethodGet, path, nil); rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, rec.Code)
		}
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	fe := newFrontEnd(t)
	if rec := fe.do(t, http.MethodGet, "/reset", nil); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /reset status = %d, want 405", rec.Code)
	}
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	web.ErrorPage(rec, httptest.NewRequestWithContext(context.Background(), http.MethodGet, "/", http.NoBody))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Content-Type"), "text/html") {
		t.Errorf("Content-Type = %q, want text/html", rec.Header().Get("Content-Type"))
	}
}
