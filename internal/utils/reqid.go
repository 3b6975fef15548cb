package utils

import "context"

type contextKey string

const requestIDKey contextKey = "reqid"

func WithRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, requestIDKey, reqID)
}

// RequestID returns the request id stored in ctx, or nil when there is none.
// The result can be passed straight to the Logger methods.
func RequestID(ctx context.Context) *string {
	if ctx == nil {
		return nil
	}
	reqID, ok := ctx.Value(requestIDKey).(string)
	if !ok || reqID == "" {
		return nil
	}
	return &reqID
}
