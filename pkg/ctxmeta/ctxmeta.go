// Package ctxmeta is the neutral layer for request metadata carried
// through context.Context (request_id, trace_id). The HTTP layer and
// the logger both depend on this small package instead of each other.
package ctxmeta

import "context"

type ctxKey string

const (
	// Unexported key type avoids collisions with other packages.
	KeyRequestID ctxKey = "request_id"
)

// WithRequestID stores the request id in the context. An empty id is
// a no-op.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext extracts the request id from the context.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
