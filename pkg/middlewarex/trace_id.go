package middlewarex

import (
	"net/http"
	"regexp"

	"github.com/rs/xid"

	"event_finder/pkg/contextx"
)

const headerNameTraceID = "X-Trace-Id"

// Caller supplied ids end up in logs and replies, so only short tokens pass.
var validTraceID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`) //nolint:gochecknoglobals

// TraceID adopts the caller's X-Trace-Id or issues an xid, and echoes it back.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(headerNameTraceID)
		if !validTraceID.MatchString(traceID) {
			traceID = xid.New().String()
		}

		w.Header().Set(headerNameTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))))
	})
}
