package httpx

import (
	"context"

	"github.com/edusupport/edusupport/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id" // int64
	CtxKeyEmail  ctxKey = "email"   // string
	CtxKeyClaims ctxKey = "claims"  // jwtx.Claims
)

// UserIDFromContext returns the authenticated user's id, or false when the
// request did not pass through AuthnMiddleware.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(CtxKeyUserID).(int64)
	return id, ok
}

// EmailFromContext returns the authenticated user's email claim.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(CtxKeyEmail).(string)
	return email, ok
}

// ClaimsFromContext returns the full verified claims.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}
