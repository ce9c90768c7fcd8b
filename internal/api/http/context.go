package http

import (
	"context"

	"vidly-backend/internal/security"
)

type contextKey int

const identityKey contextKey = iota

// IdentityFromContext extracts the authenticated caller's claims placed in
// the request context by the Authenticate middleware.
func IdentityFromContext(ctx context.Context) (*security.UserClaims, bool) {
	claims, ok := ctx.Value(identityKey).(*security.UserClaims)
	return claims, ok
}

func contextWithIdentity(ctx context.Context, claims *security.UserClaims) context.Context {
	return context.WithValue(ctx, identityKey, claims)
}
