package common

import "context"

type contextKey string

const adminContextKey contextKey = "adminSession"

// ContextWithAdmin marks the request as carrying a verified admin token.
func ContextWithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, adminContextKey, true)
}

// IsAdmin reports whether the admin mark is present on the context.
func IsAdmin(ctx context.Context) bool {
	ok, _ := ctx.Value(adminContextKey).(bool)
	return ok
}
