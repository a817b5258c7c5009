package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

var requestIDKey ctxKey

// WithRequestID tags the context with the request id assigned by the
// request-id middleware.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFrom returns the request id on the context, or "" when the
// request never passed through the middleware.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// FromCtx returns the global logger enriched with the context's request id
// when one is present.
func FromCtx(ctx context.Context) *zap.Logger {
	if id := RequestIDFrom(ctx); id != "" {
		return L().With(zap.String("request_id", id))
	}
	return L()
}
