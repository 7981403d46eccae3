package contextkeys

import (
	"context"
)

type traceIDKeyType struct{}

var traceIDKey = traceIDKeyType{}

// ContextWithTraceID puts a trace_id into the context.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext extracts the trace_id, or "" when absent.
func TraceIDFromContext(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDKey).(string); ok {
		return traceID
	}
	return ""
}
