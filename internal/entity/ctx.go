package entity

import (
	"context"
)

type CtxKey int

const (
	CtxKeyToken CtxKey = iota
)

// CtxWithToken stores the caller's bearer credential so outgoing backend
// calls made on behalf of this request reuse it.
func CtxWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CtxKeyToken, token)
}

// TokenFromCtx returns the bearer credential from context or empty string if absent.
func TokenFromCtx(ctx context.Context) string {
	token, ok := ctx.Value(CtxKeyToken).(string)
	if !ok {
		return ""
	}

	return token
}
