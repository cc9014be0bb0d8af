package reply

import (
	"context"
	"log/slog"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"event_finder/pkg/contextx"
	"event_finder/pkg/errcodes"
	"event_finder/pkg/logx"
	"event_finder/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// Coded replies with an error whose status and code are already known.
func Coded(ctx context.Context, w http.ResponseWriter, statusCode int, code failure.ErrorCode, message string) {
	level := slog.LevelWarn
	if statusCode >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	logger(ctx).Log(ctx, level, "request failed",
		slog.String("code", code.String()),
		slog.Int(logx.FieldResponseStatus, statusCode),
		slog.String("message", message),
	)

	JSON(ctx, w, statusCode, rest.Error{
		Code:      rest.ErrorCode(code),
		Message:   message,
		SupportID: supportID(ctx),
	})
}

// Error replies with a failure error, unknown errors become 500.
func Error(ctx context.Context, w http.ResponseWriter, err error) {
	logger(ctx).Error("error", logx.Error(err))

	response := rest.Error{
		Code:      rest.ErrorCode(failure.Code(err)),
		Message:   failure.Description(err),
		SupportID: supportID(ctx),
	}

	withDefaultCode := func(code failure.ErrorCode) {
		if response.Code == "" {
			response.Code = rest.ErrorCode(code)
		}
	}

	switch {
	case failure.IsInvalidArgumentError(err):
		withDefaultCode(errcodes.ValidationError)
		JSON(ctx, w, http.StatusBadRequest, response)
	case failure.IsNotFoundError(err):
		withDefaultCode(errcodes.NotFound)
		JSON(ctx, w, http.StatusNotFound, response)
	case failure.IsForbiddenError(err):
		withDefaultCode(errcodes.Forbidden)
		JSON(ctx, w, http.StatusForbidden, response)
	case failure.IsConflictError(err):
		JSON(ctx, w, http.StatusConflict, response)
	case failure.IsUnprocessableEntityError(err):
		JSON(ctx, w, http.StatusUnprocessableEntity, response)
	default:
		withDefaultCode(errcodes.InternalServerError)
		JSON(ctx, w, http.StatusInternalServerError, response)
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
