//go:build !otel || gopls

package ctxmeta

import "context"

// Builds without the `otel` tag: trace/span stubs.
func TraceIDFromContext(context.Context) (string, bool) { return "", false }
func SpanIDFromContext(context.Context) (string, bool)  { return "", false }
