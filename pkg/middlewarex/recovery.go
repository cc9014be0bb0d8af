package middlewarex

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"event_finder/pkg/errcodes"
	"event_finder/pkg/httpx/reply"
	"event_finder/pkg/logx"
)

// Recovery turns a handler panic into a 500 reply carrying the trace id.
// http.ErrAbortHandler is re-raised so the server aborts the response.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			ctx := r.Context()

			logger(ctx).Error("panic in handler",
				slog.Any(logx.FieldError, rec),
				slog.String(logx.FieldStack, string(debug.Stack())),
			)

			reply.Coded(ctx, w, http.StatusInternalServerError, errcodes.InternalServerError, "internal server error")
		}()

		next.ServeHTTP(w, r)
	})
}
