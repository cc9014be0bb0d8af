package logx

import (
	"fmt"
	"log/slog"

	"github.com/lmittmann/tint"
)

// Transport fields.
const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldRequestBody     = "request-body"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldStack           = "stack"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
	FieldUserID          = "user-id"
)

// Catalog fields.
const (
	FieldEventID  = "event-id"
	FieldTicketID = "ticket-id"
	FieldLocation = "location"
	FieldPrice    = "price"
	FieldWorker   = "worker"
)

// Error renders err in red on tint handlers and as a plain string elsewhere.
var Error = tint.Err //nolint:gochecknoglobals

func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

func EventID(id int64) slog.Attr {
	return slog.Int64(FieldEventID, id)
}

func TicketID(id int64) slog.Attr {
	return slog.Int64(FieldTicketID, id)
}
