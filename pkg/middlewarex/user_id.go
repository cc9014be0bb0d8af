package middlewarex

import (
	"log/slog"
	"net/http"

	"event_finder/pkg/contextx"
	"event_finder/pkg/logx"
)

const headerNameUserID = "X-User-Id"

// UserID puts the caller supplied user id into the request context and the
// request logger. Requests without the header stay anonymous.
func UserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(headerNameUserID)
		if userID == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := contextx.WithUserID(r.Context(), contextx.UserID(userID))
		ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldUserID, userID)))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
