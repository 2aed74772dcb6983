package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-todo-list/internal/adapters/http/dto"
)

var errInternalServer = errors.New("internal server error")

// Recovery turns a handler panic into a logged stack trace and a 500. The
// response is produced by fallback, or by an RFC 9457 problem document when
// fallback is nil. Nothing is written if the handler already sent headers.
func Recovery(logger *slog.Logger, fallback http.Handler) func(http.Handler) http.Handler {
	if fallback == nil {
		fallback = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			dto.WriteErrorResponse(w, r, errInternalServer)
		})
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				if !rw.headerWritten {
					fallback.ServeHTTP(rw, r)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
