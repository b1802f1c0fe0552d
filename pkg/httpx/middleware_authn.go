package httpx

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/edusupport/edusupport/pkg/jwtx"
	"github.com/edusupport/edusupport/pkg/slogx"
)

// AuthnMiddleware verifies the bearer token on protected routes. Every
// rejection reason (bad signature, wrong issuer or audience, expired,
// malformed) collapses to the same 401 on the wire; the reason only shows
// up in server logs.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("token rejected", "reason", err)
				writeBearerError(w, "token verification failed")
				return
			}

			userID, err := strconv.ParseInt(claims.Subject, 10, 64)
			if err != nil {
				log.Warn("token rejected", "reason", "non-numeric subject", "sub", claims.Subject)
				writeBearerError(w, "token verification failed")
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithAuth(ctx, userID, claims)))
		})
	}
}

func contextWithAuth(ctx context.Context, userID int64, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, userID)
	ctx = context.WithValue(ctx, CtxKeyEmail, c.Email)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// RFC 6750-style error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
