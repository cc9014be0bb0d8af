package contextx

import (
	"context"
	"fmt"
)

// TraceID correlates the log lines and error replies of one request.
type TraceID string

func (t TraceID) String() string { return string(t) }

// UserID identifies the caller: an X-User-Id header, a Telegram user or the shell.
type UserID string

func (u UserID) String() string { return string(u) }

type (
	contextKeyTraceID struct{}
	contextKeyUserID  struct{}
)

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	return valueFrom[TraceID](ctx, contextKeyTraceID{}, "trace id")
}

func WithUserID(ctx context.Context, userID UserID) context.Context {
	return context.WithValue(ctx, contextKeyUserID{}, userID)
}

func UserIDFromContext(ctx context.Context) (UserID, error) {
	return valueFrom[UserID](ctx, contextKeyUserID{}, "user id")
}

// UserIDOrEmpty returns the caller id, or "" for anonymous callers.
func UserIDOrEmpty(ctx context.Context) UserID {
	userID, _ := ctx.Value(contextKeyUserID{}).(UserID) //nolint:errcheck
	return userID
}

func valueFrom[T any](ctx context.Context, key any, name string) (T, error) {
	v, ok := ctx.Value(key).(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s: %w", name, ErrNoValue)
	}

	return v, nil
}
