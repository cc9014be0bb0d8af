package middlewarex

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/zenazn/goji/web/mutil"

	"event_finder/pkg/logx"
)

type payloadLogger struct {
	masker logx.Masker
	maxLen int
}

// HTTPLogging logs the dumped request before the handler runs and the teed
// response after it. Payloads are masked and cut to maxLen bytes; a
// non-positive maxLen keeps them whole.
func HTTPLogging(masker logx.Masker, maxLen int) func(next http.Handler) http.Handler {
	pl := payloadLogger{masker: masker, maxLen: maxLen}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			start := time.Now()

			pl.request(ctx, r)

			// The wrapper keeps Flusher and friends visible to handlers.
			lw := mutil.WrapWriter(w)

			var body bytes.Buffer
			lw.Tee(&body)

			next.ServeHTTP(lw, r)

			// Status is 0 when the handler never wrote anything.
			pl.response(ctx, cmp.Or(lw.Status(), http.StatusOK), w.Header(), body.Bytes(), time.Since(start))
		})
	}
}

func (pl payloadLogger) request(ctx context.Context, r *http.Request) {
	withBody := r.ContentLength != 0 &&
		!strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")

	dump, err := httputil.DumpRequest(r, withBody)
	if err != nil {
		logger(ctx).Error("httputil.DumpRequest", logx.Error(err))
	}

	logger(ctx).Info(logx.FieldHTTPRequest, slog.String(logx.FieldRequestBody, pl.field(dump)))
}

func (pl payloadLogger) response(ctx context.Context, status int, header http.Header, body []byte, took time.Duration) {
	var headers bytes.Buffer
	if err := header.WriteSubset(&headers, nil); err != nil {
		logger(ctx).Error("header.WriteSubset", logx.Error(fmt.Errorf("response headers: %w", err)))
	}

	logger(ctx).Log(ctx, levelForStatus(status),
		logx.FieldHTTPResponse,
		slog.Int(logx.FieldResponseStatus, status),
		slog.String(logx.FieldResponseHeaders, pl.field(headers.Bytes())),
		slog.String(logx.FieldResponseBody, pl.field(body)),
		slog.Int64(logx.FieldDurationMs, took.Milliseconds()),
	)
}

func (pl payloadLogger) field(payload []byte) string {
	if pl.maxLen > 0 && len(payload) > pl.maxLen {
		payload = payload[:pl.maxLen]
	}
	return string(pl.masker.Mask(payload))
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
