package contextkeys

import "context"

type contextKey string

const (
	SessionIDKey contextKey = "SessionID"
	RequestIDKey contextKey = "RequestID"
)

// Keys of values stored on echo.Context.
const (
	EchoLoggerKey     = "logger"
	EchoTranslatorKey = "translator"
)

func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(SessionIDKey).(string)
	return id
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
